package media

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
	"github.com/ishan-1010/future-social-ishan/internal/storage/s3"

	"github.com/google/uuid"
)

// 10 MB cap on uploads, same order as the UI allows for post images.
const maxUploadSize = 10 << 20

const presignTTL = 15 * time.Minute

type Service interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error)
	SignedURL(ctx context.Context, key string) (string, error)
}

type service struct {
	store     *s3.Storage
	publicURL string
}

func NewService(store *s3.Storage, publicURL string) Service {
	return &service{store: store, publicURL: publicURL}
}

func (s *service) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > maxUploadSize {
		return nil, fmt.Errorf("%w: file too large", httpx.ErrBadInput)
	}
	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUploadSize {
		return nil, fmt.Errorf("%w: file too large", httpx.ErrBadInput)
	}
	key := uuid.NewString() + filepath.Ext(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, err
	}
	return &UploadResult{Key: key, URL: s.urlFor(ctx, key)}, nil
}

func (s *service) SignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.store.PresignGet(ctx, key, presignTTL)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *service) urlFor(ctx context.Context, key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	if u, err := s.store.PresignGet(ctx, key, presignTTL); err == nil {
		return u.String()
	}
	return ""
}
