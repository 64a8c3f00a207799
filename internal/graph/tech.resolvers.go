package graph

import (
	"context"

	"devmart-be/internal/graph/model"
	"devmart-be/internal/post"
)

func (r *mutationResolver) AddTech(ctx context.Context, postID string, name string) (*model.Post, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	p, err := r.TechSvc.AddToPost(ctx, name, postID)
	if err != nil {
		return nil, err
	}

	expanded, err := r.expandPostDocs(ctx, []post.Post{*p})
	if err != nil {
		return nil, err
	}
	return expanded[0], nil
}

func (r *queryResolver) Tech(ctx context.Context, id string) (*model.Tech, error) {
	t, err := r.TechSvc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := toGraphQLTech(t)
	res.Posts, err = r.expandPosts(ctx, t.Posts)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *queryResolver) Techs(ctx context.Context) ([]*model.Tech, error) {
	techs, err := r.TechSvc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.Tech, 0, len(techs))
	for i := range techs {
		res := toGraphQLTech(&techs[i])
		res.Posts, err = r.expandPosts(ctx, techs[i].Posts)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}
