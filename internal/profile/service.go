package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"

	"gorm.io/gorm"
)

const fallbackUsername = "User"

type Service interface {
	Ensure(ctx context.Context, userID, email string) (*Profile, error)
	Get(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, in UpdateReq) (*Profile, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

// Ensure creates the profile on first authentication and is a no-op after
// that. The default username is the email local-part.
func (s *service) Ensure(ctx context.Context, userID, email string) (*Profile, error) {
	name := usernameFromEmail(email)
	if err := s.repo.InsertIgnore(ctx, &Profile{ID: userID, Username: &name}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("profile %s: %w", userID, httpx.ErrNotFound)
	}
	return p, err
}

func (s *service) Update(ctx context.Context, userID string, in UpdateReq) (*Profile, error) {
	fields := map[string]any{"updated_at": time.Now()}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.AvatarURL != nil {
		fields["avatar_url"] = *in.AvatarURL
	}
	if err := s.repo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func usernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return fallbackUsername
	}
	return local
}
