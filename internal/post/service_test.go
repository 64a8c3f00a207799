package post

import (
	"context"
	"errors"
	"testing"

	"devmart-be/internal/order"
	"devmart-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *Post) (*Post, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Post, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Post), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Post), args.Error(1)
}

func (m *MockRepository) PushTech(ctx context.Context, postID, techID primitive.ObjectID) (*Post, error) {
	args := m.Called(ctx, postID, techID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, params user.UpdateParams) (*user.User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) PushPost(ctx context.Context, userID, postID primitive.ObjectID) (*user.User, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) PullPost(ctx context.Context, userID, postID primitive.ObjectID) (*user.User, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) PushOrder(ctx context.Context, userID primitive.ObjectID, o order.Order) error {
	args := m.Called(ctx, userID, o)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_CreateForUser(t *testing.T) {
	ctx := context.Background()
	uid := primitive.NewObjectID()

	t.Run("CreatesAndLinks", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockUsers := new(MockUserRepository)
		svc := NewService(mockRepo, mockUsers)

		pid := primitive.NewObjectID()

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *Post) bool {
			return p.Title == "Hello" && p.Body == "World"
		})).Return(&Post{ID: pid, Title: "Hello", Body: "World"}, nil)

		mockUsers.On("PushPost", ctx, uid, pid).
			Return(&user.User{ID: uid, Posts: []primitive.ObjectID{pid}}, nil)

		u, err := svc.CreateForUser(ctx, uid.Hex(), CreateParams{Title: "Hello", Body: "World"})

		assert.NoError(t, err)
		assert.Contains(t, u.Posts, pid)
		mockRepo.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("InvalidUserID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockUsers := new(MockUserRepository)
		svc := NewService(mockRepo, mockUsers)

		_, err := svc.CreateForUser(ctx, "bogus", CreateParams{Title: "Hello"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("InsertError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockUsers := new(MockUserRepository)
		svc := NewService(mockRepo, mockUsers)

		mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db error"))

		_, err := svc.CreateForUser(ctx, uid.Hex(), CreateParams{Title: "Hello"})
		assert.Error(t, err)
		mockUsers.AssertNotCalled(t, "PushPost")
	})
}

func TestService_DeleteForUser(t *testing.T) {
	ctx := context.Background()
	uid := primitive.NewObjectID()
	pid := primitive.NewObjectID()

	t.Run("UnlinksAndDeletes", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockUsers := new(MockUserRepository)
		svc := NewService(mockRepo, mockUsers)

		mockUsers.On("PullPost", ctx, uid, pid).Return(&user.User{ID: uid}, nil)
		mockRepo.On("DeleteByID", ctx, pid).Return(nil)

		u, err := svc.DeleteForUser(ctx, uid.Hex(), pid.Hex())

		assert.NoError(t, err)
		assert.Empty(t, u.Posts)
		mockRepo.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("InvalidPostID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockUsers := new(MockUserRepository)
		svc := NewService(mockRepo, mockUsers)

		_, err := svc.DeleteForUser(ctx, uid.Hex(), "bogus")
		assert.Error(t, err)
		mockUsers.AssertNotCalled(t, "PullPost")
	})
}
