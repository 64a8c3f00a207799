package post

import (
	"context"
	"fmt"

	"devmart-be/internal/logger"
	"devmart-be/internal/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Post, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Post, error)
	GetAll(ctx context.Context) ([]Post, error)
	CreateForUser(ctx context.Context, userID string, params CreateParams) (*user.User, error)
	DeleteForUser(ctx context.Context, userID, postID string) (*user.User, error)
}

type service struct {
	repo  Repository
	users user.Repository
}

func NewService(repo Repository, users user.Repository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) GetByID(ctx context.Context, id string) (*Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *service) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Post, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) GetAll(ctx context.Context) ([]Post, error) {
	return s.repo.FindAll(ctx)
}

// CreateForUser inserts the post and links it onto the author's posts field.
// The two writes are not transactional; a failed link leaves an unreferenced
// post behind, mirroring the store's per-document atomicity.
func (s *service) CreateForUser(ctx context.Context, userID string, params CreateParams) (*user.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	p, err := s.repo.Create(ctx, &Post{Title: params.Title, Body: params.Body})
	if err != nil {
		return nil, err
	}

	u, err := s.users.PushPost(ctx, uid, p.ID)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("post created",
		zap.String("user_id", userID),
		zap.String("post_id", p.ID.Hex()),
	)

	return u, nil
}

func (s *service) DeleteForUser(ctx context.Context, userID, postID string) (*user.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}

	u, err := s.users.PullPost(ctx, uid, pid)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, pid); err != nil {
		return nil, err
	}

	return u, nil
}
