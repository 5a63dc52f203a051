package user

import (
	"context"
	"strings"

	"storefront-be/internal/auth"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, firstName, lastName string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, email, password, firstName, lastName string) (*User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &User{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
		Role:      auth.RoleCustomer,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return nil, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", u.Email), zap.Error(err))
		return nil, err
	}

	log.Info("user registered",
		zap.Uint("user_id", u.ID),
		zap.String("email", u.Email),
	)
	return u, nil
}

// Login folds unknown-email and wrong-password into one error so responses
// do not reveal which part failed.
func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		return "", nil, ErrAccountDeactivated
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to generate jwt",
			zap.Uint("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, firstName, lastName string) (*User, error) {
	return s.repo.UpdateProfile(ctx, userID, firstName, lastName)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
