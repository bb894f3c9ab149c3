package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"donorlink-web/internal/logger"
	"donorlink-web/internal/session"

	"go.uber.org/zap"
)

const (
	minPasswordLen = 8
	// bcrypt rejects longer passwords.
	maxPasswordLen = 72
	maxNameLen     = 100
	maxEmailLen    = 254
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	log := logger.FromCtx(ctx)

	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.ToLower(strings.TrimSpace(params.Email))

	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, ErrMissingFields
	}
	if utf8.RuneCountInString(params.Name) > maxNameLen {
		return nil, ErrNameTooLong
	}
	if len(params.Email) > maxEmailLen {
		return nil, ErrEmailTooLong
	}
	if len(params.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	if len(params.Password) > maxPasswordLen {
		return nil, ErrPasswordTooLong
	}
	if !params.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", session.ErrInvalidRole, params.Role)
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}
	params.Password = hashed

	u, err := s.repo.Create(ctx, params)
	if err != nil {
		if !errors.Is(err, ErrEmailExists) {
			log.Error("failed to create user", zap.String("email", params.Email), zap.Error(err))
		}
		return nil, err
	}

	log.Info("register service completed",
		zap.Int("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Info("login: email not found")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Info("login: password mismatch", zap.Int("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(s.jwtSecret, u.ID, u.Role, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) GetUserByID(ctx context.Context, id int) (*User, error) {
	return s.repo.FindByID(ctx, id)
}
