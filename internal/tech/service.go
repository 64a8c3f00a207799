package tech

import (
	"context"
	"fmt"

	"devmart-be/internal/logger"
	"devmart-be/internal/post"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Tech, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Tech, error)
	GetAll(ctx context.Context) ([]Tech, error)
	AddToPost(ctx context.Context, name, postID string) (*post.Post, error)
}

type service struct {
	repo  Repository
	posts post.Repository
}

func NewService(repo Repository, posts post.Repository) Service {
	return &service{repo: repo, posts: posts}
}

func (s *service) GetByID(ctx context.Context, id string) (*Tech, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tech id: %w", err)
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *service) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Tech, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) GetAll(ctx context.Context) ([]Tech, error) {
	return s.repo.FindAll(ctx)
}

// AddToPost resolves the tech by name, creating it if needed, and links it
// onto the post. Reusing an existing name never creates a duplicate tech.
func (s *service) AddToPost(ctx context.Context, name, postID string) (*post.Post, error) {
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}

	t, err := s.repo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}

	p, err := s.posts.PushTech(ctx, pid, t.ID)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("tech linked to post",
		zap.String("tech", name),
		zap.String("post_id", postID),
	)

	return p, nil
}
