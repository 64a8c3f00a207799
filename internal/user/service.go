package user

import (
	"context"
	"fmt"

	"devmart-be/internal/logger"
	"devmart-be/internal/order"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, userID string, params UpdateParams) (*User, error)
	AddOrder(ctx context.Context, userID string, productIDs []string) (*order.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*order.Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, username, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, &User{
		Username: username,
		Email:    email,
		Password: hashed,
	})
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		if mongo.IsDuplicateKeyError(err) {
			return "", nil, ErrEmailExists
		}
		return "", nil, err
	}

	token, err := GenerateJWT(u.ID.Hex(), u.Username, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID.Hex()), zap.Error(err))
		return "", nil, err
	}

	log.Info("register service completed",
		zap.String("user_id", u.ID.Hex()),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		logger.FromCtx(ctx).Warn("login: email not found", zap.String("email", email))
		return "", nil, ErrIncorrectCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		logger.FromCtx(ctx).Warn("login: password mismatch", zap.String("email", email))
		return "", nil, ErrIncorrectCredentials
	}

	token, err := GenerateJWT(u.ID.Hex(), u.Username, u.Email)
	return token, u, err
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) Update(ctx context.Context, userID string, params UpdateParams) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	if params.Password != nil {
		hashed, err := HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		params.Password = &hashed
	}

	return s.repo.UpdateByID(ctx, oid, params)
}

func (s *service) AddOrder(ctx context.Context, userID string, productIDs []string) (*order.Order, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	products := make([]primitive.ObjectID, 0, len(productIDs))
	for _, pid := range productIDs {
		p, err := primitive.ObjectIDFromHex(pid)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %w", err)
		}
		products = append(products, p)
	}

	o := order.New(products)
	if err := s.repo.PushOrder(ctx, oid, o); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order recorded",
		zap.String("user_id", userID),
		zap.String("order_id", o.ID.Hex()),
		zap.Int("products", len(products)),
	)

	return &o, nil
}

func (s *service) GetOrder(ctx context.Context, userID, orderID string) (*order.Order, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range u.Orders {
		if u.Orders[i].ID.Hex() == orderID {
			return &u.Orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}
