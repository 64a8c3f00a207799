package graph

import (
	"context"
	"testing"
	"time"

	"devmart-be/internal/order"
	"devmart-be/internal/user"
	"devmart-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func authedCtx(uid primitive.ObjectID) context.Context {
	return context.WithValue(context.Background(), utils.UserIDKey, uid.Hex())
}

func TestMutationResolver_AddUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockUserService)
		resolver := &Resolver{UserSvc: mockSvc}
		mr := &mutationResolver{resolver}

		ctx := context.Background()
		u := &user.User{ID: primitive.NewObjectID(), Username: "tester", Email: "test@test.com"}

		mockSvc.On("Register", ctx, "tester", "test@test.com", "password").Return("token_123", u, nil)

		res, err := mr.AddUser(ctx, "tester", "test@test.com", "password")

		assert.NoError(t, err)
		assert.Equal(t, "token_123", res.Token)
		assert.Equal(t, "test@test.com", res.User.Email)
		mockSvc.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockSvc := new(MockUserService)
		resolver := &Resolver{UserSvc: mockSvc}
		mr := &mutationResolver{resolver}

		ctx := context.Background()
		mockSvc.On("Register", ctx, "tester", "test@test.com", "password").
			Return("", nil, user.ErrEmailExists)

		_, err := mr.AddUser(ctx, "tester", "test@test.com", "password")
		assert.Equal(t, user.ErrEmailExists, err)
	})
}

func TestMutationResolver_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		ctx := context.Background()
		u := &user.User{ID: primitive.NewObjectID(), Email: "test@test.com"}

		mockSvc.On("Login", ctx, "test@test.com", "password").Return("token_123", u, nil)

		res, err := mr.Login(ctx, "test@test.com", "password")
		assert.NoError(t, err)
		assert.Equal(t, "token_123", res.Token)
	})

	t.Run("IncorrectCredentials", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		ctx := context.Background()
		mockSvc.On("Login", ctx, "test@test.com", "wrong").
			Return("", nil, user.ErrIncorrectCredentials)

		_, err := mr.Login(ctx, "test@test.com", "wrong")
		assert.Equal(t, user.ErrIncorrectCredentials, err)
	})
}

func TestMutationResolver_UpdateUser(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		_, err := mr.UpdateUser(context.Background(), utils.StrPtr("newname"), nil, nil)

		assert.Equal(t, errNotLoggedIn, err)
		mockSvc.AssertNotCalled(t, "Update")
	})

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockSvc}}

		uid := primitive.NewObjectID()
		ctx := authedCtx(uid)
		username := "newname"

		mockSvc.On("Update", ctx, uid.Hex(), user.UpdateParams{Username: &username}).
			Return(&user.User{ID: uid, Username: username}, nil)

		res, err := mr.UpdateUser(ctx, &username, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, username, res.Username)
	})
}

func TestQueryResolver_User(t *testing.T) {
	t.Run("ExplicitIDWithoutAuth", func(t *testing.T) {
		// An explicit id needs no principal.
		mockUsers := new(MockUserService)
		mockPosts := new(MockPostService)
		mockTechs := new(MockTechService)
		qr := &queryResolver{&Resolver{UserSvc: mockUsers, PostSvc: mockPosts, TechSvc: mockTechs}}

		ctx := context.Background()
		uid := primitive.NewObjectID()
		u := &user.User{ID: uid, Username: "someone", Email: "someone@test.com"}

		mockUsers.On("GetByID", ctx, uid.Hex()).Return(u, nil)
		mockPosts.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)
		mockTechs.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)

		res, err := qr.User(ctx, utils.StrPtr(uid.Hex()))
		assert.NoError(t, err)
		assert.Equal(t, "someone", res.Username)
	})

	t.Run("SelfWithoutAuth", func(t *testing.T) {
		mockUsers := new(MockUserService)
		qr := &queryResolver{&Resolver{UserSvc: mockUsers}}

		_, err := qr.User(context.Background(), nil)
		assert.Equal(t, errNotLoggedIn, err)
		mockUsers.AssertNotCalled(t, "GetByID")
	})

	t.Run("SelfOrdersNewestFirst", func(t *testing.T) {
		mockUsers := new(MockUserService)
		mockPosts := new(MockPostService)
		mockTechs := new(MockTechService)
		mockProducts := new(MockProductService)
		qr := &queryResolver{&Resolver{
			UserSvc:    mockUsers,
			PostSvc:    mockPosts,
			TechSvc:    mockTechs,
			ProductSvc: mockProducts,
		}}

		uid := primitive.NewObjectID()
		ctx := authedCtx(uid)

		older := order.New(nil)
		newer := order.New(nil)
		newer.PurchaseDate = older.PurchaseDate.Add(time.Second)

		mockUsers.On("GetByID", ctx, uid.Hex()).
			Return(&user.User{ID: uid, Orders: []order.Order{older, newer}}, nil)
		mockPosts.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)
		mockTechs.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)
		mockProducts.On("GetByIDs", ctx, mock.Anything).Return(nil, nil)

		res, err := qr.User(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, res.Orders, 2)
		assert.Equal(t, newer.ID.Hex(), res.Orders[0].ID)
		assert.Equal(t, older.ID.Hex(), res.Orders[1].ID)
	})
}
