package graph

import (
	"context"
	"testing"

	"devmart-be/internal/post"
	"devmart-be/internal/tech"
	"devmart-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMutationResolver_AddPost(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		mockPosts := new(MockPostService)
		mr := &mutationResolver{&Resolver{PostSvc: mockPosts}}

		_, err := mr.AddPost(context.Background(), "Title", "Body")

		assert.Equal(t, errNotLoggedIn, err)
		mockPosts.AssertNotCalled(t, "CreateForUser")
	})

	t.Run("Success", func(t *testing.T) {
		mockPosts := new(MockPostService)
		mockTechs := new(MockTechService)
		mr := &mutationResolver{&Resolver{PostSvc: mockPosts, TechSvc: mockTechs}}

		uid := primitive.NewObjectID()
		pid := primitive.NewObjectID()
		ctx := authedCtx(uid)

		mockPosts.On("CreateForUser", ctx, uid.Hex(), post.CreateParams{Title: "Title", Body: "Body"}).
			Return(&user.User{ID: uid, Posts: []primitive.ObjectID{pid}}, nil)
		mockPosts.On("GetByIDs", ctx, []primitive.ObjectID{pid}).
			Return([]post.Post{{ID: pid, Title: "Title", Body: "Body"}}, nil)
		mockTechs.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)

		res, err := mr.AddPost(ctx, "Title", "Body")
		assert.NoError(t, err)
		assert.Len(t, res.Posts, 1)
		assert.Equal(t, "Title", res.Posts[0].Title)
	})
}

func TestMutationResolver_DeletePost(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		mockPosts := new(MockPostService)
		mr := &mutationResolver{&Resolver{PostSvc: mockPosts}}

		_, err := mr.DeletePost(context.Background(), primitive.NewObjectID().Hex())

		assert.Equal(t, errNotLoggedIn, err)
		mockPosts.AssertNotCalled(t, "DeleteForUser")
	})

	t.Run("Success", func(t *testing.T) {
		mockPosts := new(MockPostService)
		mockTechs := new(MockTechService)
		mr := &mutationResolver{&Resolver{PostSvc: mockPosts, TechSvc: mockTechs}}

		uid := primitive.NewObjectID()
		pid := primitive.NewObjectID()
		ctx := authedCtx(uid)

		mockPosts.On("DeleteForUser", ctx, uid.Hex(), pid.Hex()).Return(&user.User{ID: uid}, nil)
		mockPosts.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)
		mockTechs.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)

		res, err := mr.DeletePost(ctx, pid.Hex())
		assert.NoError(t, err)
		assert.Empty(t, res.Posts)
	})
}

func TestQueryResolver_Post(t *testing.T) {
	mockPosts := new(MockPostService)
	mockTechs := new(MockTechService)
	qr := &queryResolver{&Resolver{PostSvc: mockPosts, TechSvc: mockTechs}}

	ctx := context.Background()
	pid := primitive.NewObjectID()
	tid := primitive.NewObjectID()

	mockPosts.On("GetByID", ctx, pid.Hex()).
		Return(&post.Post{ID: pid, Title: "Title", Tech: []primitive.ObjectID{tid}}, nil)
	mockTechs.On("GetByIDs", ctx, []primitive.ObjectID{tid}).
		Return([]tech.Tech{{ID: tid, Name: "Go"}}, nil)

	res, err := qr.Post(ctx, pid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Title", res.Title)
	assert.Len(t, res.Tech, 1)
	assert.Equal(t, "Go", res.Tech[0].Name)
}

func TestQueryResolver_Posts(t *testing.T) {
	mockPosts := new(MockPostService)
	mockTechs := new(MockTechService)
	qr := &queryResolver{&Resolver{PostSvc: mockPosts, TechSvc: mockTechs}}

	ctx := context.Background()

	mockPosts.On("GetAll", ctx).Return([]post.Post{
		{ID: primitive.NewObjectID(), Title: "One"},
		{ID: primitive.NewObjectID(), Title: "Two"},
	}, nil)
	mockTechs.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)

	res, err := qr.Posts(ctx)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}
