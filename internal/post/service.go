package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/ishan-1010/future-social-ishan/internal/events"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, authorID string, in CreatePostRequest) (*Post, error)
	List(ctx context.Context, viewerID string) ([]PostWithDetails, error)
}

type service struct {
	repo     Repository
	producer *events.Producer
}

func NewService(r Repository, p *events.Producer) Service {
	return &service{repo: r, producer: p}
}

func (s *service) Create(ctx context.Context, authorID string, in CreatePostRequest) (*Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", httpx.ErrBadInput)
	}
	p := &Post{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Content:  content,
		ImageURL: normalizeURL(in.ImageURL),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.producer.Publish(ctx, p.ID, events.PostCreated{
		PostID: p.ID, AuthorID: p.AuthorID, CreatedAt: p.CreatedAt,
	})
	return p, nil
}

func (s *service) List(ctx context.Context, viewerID string) ([]PostWithDetails, error) {
	return s.repo.ListWithDetails(ctx, viewerID)
}

// Blank image URLs are stored as NULL, not empty strings.
func normalizeURL(u *string) *string {
	if u == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*u)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
