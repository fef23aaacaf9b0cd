package user

import (
	"context"
	"regexp"
	"strings"

	"loja-be/internal/logger"
	"loja-be/internal/utils"

	"go.uber.org/zap"
)

const minPasswordLen = 8

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service interface {
	Register(ctx context.Context, email, name, password string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetProfile(ctx context.Context) (User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error)
	ChangePassword(ctx context.Context, current, next string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, name, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegex.MatchString(email) {
		return "", User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return "", User{}, ErrWeakPassword
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, email, name, hashed, string(RoleUser))
	if err != nil {
		if err != ErrEmailExists {
			log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID))
	return token, u, nil
}

// Login never reveals which of email or password was wrong.
func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("login with unknown email")
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login with wrong password", zap.Uint("user_id", u.ID))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		return "", User{}, err
	}

	log.Info("user logged in", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) GetProfile(ctx context.Context) (User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return User{}, ErrUserNotFound
	}

	return s.repo.FindByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return User{}, ErrUserNotFound
	}

	if params.Email != nil {
		normalized := strings.TrimSpace(strings.ToLower(*params.Email))
		if !emailRegex.MatchString(normalized) {
			return User{}, ErrInvalidEmail
		}
		params.Email = &normalized
	}

	return s.repo.UpdateProfile(ctx, userID, params)
}

func (s *service) ChangePassword(ctx context.Context, current, next string) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotFound
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ChangePassword"),
		zap.Uint("user_id", userID),
	)

	if len(next) < minPasswordLen {
		return ErrWeakPassword
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !CheckPasswordHash(current, u.Password) {
		log.Warn("password change with wrong current password")
		return ErrWrongPassword
	}

	hashed, err := HashPassword(next)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, hashed); err != nil {
		log.Error("failed to update password", zap.Error(err))
		return err
	}

	log.Info("password changed")
	return nil
}
