package graph

import (
	"context"
	"testing"

	"devmart-be/internal/post"
	"devmart-be/internal/tech"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMutationResolver_AddTech(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		mockTechs := new(MockTechService)
		mr := &mutationResolver{&Resolver{TechSvc: mockTechs}}

		_, err := mr.AddTech(context.Background(), primitive.NewObjectID().Hex(), "Go")

		assert.Equal(t, errNotLoggedIn, err)
		mockTechs.AssertNotCalled(t, "AddToPost")
	})

	t.Run("Success", func(t *testing.T) {
		mockTechs := new(MockTechService)
		mockPosts := new(MockPostService)
		mr := &mutationResolver{&Resolver{TechSvc: mockTechs, PostSvc: mockPosts}}

		uid := primitive.NewObjectID()
		pid := primitive.NewObjectID()
		tid := primitive.NewObjectID()
		ctx := authedCtx(uid)

		mockTechs.On("AddToPost", ctx, "Go", pid.Hex()).
			Return(&post.Post{ID: pid, Tech: []primitive.ObjectID{tid}}, nil)
		mockTechs.On("GetByIDs", ctx, []primitive.ObjectID{tid}).
			Return([]tech.Tech{{ID: tid, Name: "Go"}}, nil)

		res, err := mr.AddTech(ctx, pid.Hex(), "Go")
		assert.NoError(t, err)
		assert.Len(t, res.Tech, 1)
		assert.Equal(t, "Go", res.Tech[0].Name)
	})
}

func TestQueryResolver_Techs(t *testing.T) {
	mockTechs := new(MockTechService)
	mockPosts := new(MockPostService)
	qr := &queryResolver{&Resolver{TechSvc: mockTechs, PostSvc: mockPosts}}

	ctx := context.Background()
	pid := primitive.NewObjectID()

	mockTechs.On("GetAll", ctx).Return([]tech.Tech{
		{ID: primitive.NewObjectID(), Name: "Go", Posts: []primitive.ObjectID{pid}},
	}, nil)
	mockPosts.On("GetByIDs", ctx, []primitive.ObjectID{pid}).
		Return([]post.Post{{ID: pid, Title: "Title"}}, nil)
	mockTechs.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)

	res, err := qr.Techs(ctx)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Len(t, res[0].Posts, 1)
}
