package user

import (
	"context"
	"errors"
	"testing"

	"devmart-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, params UpdateParams) (*User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) PushPost(ctx context.Context, userID, postID primitive.ObjectID) (*User, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) PullPost(ctx context.Context, userID, postID primitive.ObjectID) (*User, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) PushOrder(ctx context.Context, userID primitive.ObjectID, o order.Order) error {
	args := m.Called(ctx, userID, o)
	return args.Error(0)
}

func (m *MockRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()
	email := "test@example.com"
	password := "password123"

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		created := &User{
			ID:       primitive.NewObjectID(),
			Username: "tester",
			Email:    email,
			Password: "hashed_password",
		}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(created, nil)

		token, u, err := svc.Register(ctx, "tester", email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, created, u)

		// The token round-trips back to the same user identifier.
		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, created.ID.Hex(), claims.UserID)

		mockRepo.AssertExpectations(t)
	})

	t.Run("HashesPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
			return u.Password != password && CheckPasswordHash(password, u.Password)
		})).Return(&User{ID: primitive.NewObjectID(), Email: email}, nil)

		_, _, err := svc.Register(ctx, "tester", email, password)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db error"))

		_, _, err := svc.Register(ctx, "tester", email, password)

		assert.Error(t, err)
		assert.Equal(t, "db error", err.Error())
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	ctx := context.Background()
	email := "test@example.com"
	password := "password123"

	hashedPassword, _ := HashPassword(password)

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		u := &User{
			ID:       primitive.NewObjectID(),
			Email:    email,
			Password: hashedPassword,
		}

		mockRepo.On("FindByEmail", ctx, email).Return(u, nil)

		token, got, err := svc.Login(ctx, email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, u, got)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(nil, errors.New("not found"))

		_, _, err := svc.Login(ctx, email, password)

		assert.Error(t, err)
		assert.Equal(t, ErrIncorrectCredentials, err)
	})

	t.Run("InvalidPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		u := &User{
			ID:       primitive.NewObjectID(),
			Email:    email,
			Password: hashedPassword,
		}

		mockRepo.On("FindByEmail", ctx, email).Return(u, nil)

		_, _, err := svc.Login(ctx, email, "wrongpassword")

		assert.Error(t, err)
		assert.Equal(t, ErrIncorrectCredentials, err)
	})

	t.Run("UniformError", func(t *testing.T) {
		// Unknown email and wrong password yield the identical error, so the
		// response never reveals which check failed.
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, errors.New("not found"))
		mockRepo.On("FindByEmail", ctx, email).Return(&User{Email: email, Password: hashedPassword}, nil)

		_, _, errNoUser := svc.Login(ctx, "nobody@example.com", password)
		_, _, errBadPw := svc.Login(ctx, email, "wrongpassword")

		assert.Equal(t, errNoUser, errBadPw)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	uid := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		username := "renamed"
		updated := &User{ID: uid, Username: username}

		mockRepo.On("UpdateByID", ctx, uid, mock.MatchedBy(func(p UpdateParams) bool {
			return p.Username != nil && *p.Username == username
		})).Return(updated, nil)

		u, err := svc.Update(ctx, uid.Hex(), UpdateParams{Username: &username})
		assert.NoError(t, err)
		assert.Equal(t, updated, u)
	})

	t.Run("RehashesPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		newPassword := "newpassword"
		mockRepo.On("UpdateByID", ctx, uid, mock.MatchedBy(func(p UpdateParams) bool {
			return p.Password != nil && CheckPasswordHash(newPassword, *p.Password)
		})).Return(&User{ID: uid}, nil)

		_, err := svc.Update(ctx, uid.Hex(), UpdateParams{Password: &newPassword})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Update(ctx, "not-an-id", UpdateParams{})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateByID")
	})
}

func TestService_AddOrder(t *testing.T) {
	ctx := context.Background()
	uid := primitive.NewObjectID()
	pid := primitive.NewObjectID()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("PushOrder", ctx, uid, mock.MatchedBy(func(o order.Order) bool {
			return len(o.Products) == 1 && o.Products[0] == pid && !o.PurchaseDate.IsZero()
		})).Return(nil)

		o, err := svc.AddOrder(ctx, uid.Hex(), []string{pid.Hex()})
		assert.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{pid}, o.Products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidProductID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.AddOrder(ctx, uid.Hex(), []string{"bogus"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "PushOrder")
	})
}

func TestService_GetOrder(t *testing.T) {
	ctx := context.Background()
	uid := primitive.NewObjectID()
	o := order.New([]primitive.ObjectID{primitive.NewObjectID()})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, uid).Return(&User{ID: uid, Orders: []order.Order{o}}, nil)

		got, err := svc.GetOrder(ctx, uid.Hex(), o.ID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, o.ID, got.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByID", ctx, uid).Return(&User{ID: uid}, nil)

		_, err := svc.GetOrder(ctx, uid.Hex(), o.ID.Hex())
		assert.Equal(t, ErrOrderNotFound, err)
	})
}
