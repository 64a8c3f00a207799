package graph

import (
	"context"
	"sort"

	"devmart-be/internal/graph/model"
	"devmart-be/internal/logger"
	"devmart-be/internal/user"

	"go.uber.org/zap"
)

func (r *mutationResolver) AddUser(ctx context.Context, username string, email string, password string) (*model.Auth, error) {
	log := logger.FromCtx(ctx)

	token, u, err := r.UserSvc.Register(ctx, username, email, password)
	if err != nil {
		log.Warn("register failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	log.Info("user registered successfully",
		zap.String("user_id", u.ID.Hex()),
		zap.String("email", u.Email),
	)

	return &model.Auth{
		Token: token,
		User:  toGraphQLUser(u),
	}, nil
}

func (r *mutationResolver) Login(ctx context.Context, email string, password string) (*model.Auth, error) {
	token, u, err := r.UserSvc.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return &model.Auth{
		Token: token,
		User:  toGraphQLUser(u),
	}, nil
}

func (r *mutationResolver) UpdateUser(ctx context.Context, username *string, email *string, password *string) (*model.User, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.UserSvc.Update(ctx, uid, user.UpdateParams{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	return toGraphQLUser(u), nil
}

// User returns the requested user when an explicit id is given, otherwise
// the authenticated caller's own record with orders newest-first.
func (r *queryResolver) User(ctx context.Context, id *string) (*model.User, error) {
	if id != nil {
		u, err := r.UserSvc.GetByID(ctx, *id)
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

	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	u, err := r.UserSvc.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	sort.Slice(u.Orders, func(i, j int) bool {
		return u.Orders[i].PurchaseDate.After(u.Orders[j].PurchaseDate)
	})

	res := toGraphQLUser(u)
	res.Posts, err = r.expandPosts(ctx, u.Posts)
	if err != nil {
		return nil, err
	}
	res.Orders, err = r.expandOrders(ctx, u.Orders)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *queryResolver) Users(ctx context.Context) ([]*model.User, error) {
	users, err := r.UserSvc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.User, 0, len(users))
	for i := range users {
		res := toGraphQLUser(&users[i])
		res.Posts, err = r.expandPosts(ctx, users[i].Posts)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}
