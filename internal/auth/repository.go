package auth

import (
	"context"

	"github.com/ishan-1010/future-social-ishan/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Create(ctx context.Context, u *User) error {
	return r.store.DB.WithContext(ctx).Create(u).Error
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.store.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
