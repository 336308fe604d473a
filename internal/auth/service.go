package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ishan-1010/future-social-ishan/internal/profile"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo     Repository
	profiles profile.Service
}

func NewService(r Repository, profiles profile.Service) Service {
	return &service{repo: r, profiles: profiles}
}

func (s *service) Register(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", httpx.ErrBadInput)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", httpx.ErrBadInput)
	}
	if exist, err := s.repo.FindByEmail(ctx, email); err == nil && exist != nil {
		return nil, fmt.Errorf("%w: user already exists", httpx.ErrBadInput)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{ID: uuid.NewString(), Email: email, PassHash: string(hash)}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if _, err := s.profiles.Ensure(ctx, u.ID, u.Email); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown email and bad password.
		return nil, fmt.Errorf("%w: wrong credentials", httpx.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: wrong credentials", httpx.ErrUnauthorized)
	}
	if _, err := s.profiles.Ensure(ctx, u.ID, u.Email); err != nil {
		return nil, err
	}
	return u, nil
}
