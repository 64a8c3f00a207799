package graph

import (
	"context"

	"devmart-be/internal/graph/model"
	"devmart-be/internal/post"
)

func (r *mutationResolver) AddPost(ctx context.Context, title string, body string) (*model.User, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.PostSvc.CreateForUser(ctx, uid, post.CreateParams{Title: title, Body: body})
	if err != nil {
		return nil, err
	}

	res := toGraphQLUser(u)
	res.Posts, err = r.expandPosts(ctx, u.Posts)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *mutationResolver) DeletePost(ctx context.Context, postID string) (*model.User, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.PostSvc.DeleteForUser(ctx, uid, postID)
	if err != nil {
		return nil, err
	}

	res := toGraphQLUser(u)
	res.Posts, err = r.expandPosts(ctx, u.Posts)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *queryResolver) Post(ctx context.Context, id string) (*model.Post, error) {
	p, err := r.PostSvc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expanded, err := r.expandPostDocs(ctx, []post.Post{*p})
	if err != nil {
		return nil, err
	}
	return expanded[0], nil
}

func (r *queryResolver) Posts(ctx context.Context) ([]*model.Post, error) {
	posts, err := r.PostSvc.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return r.expandPostDocs(ctx, posts)
}
