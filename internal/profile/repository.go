package profile

import (
	"context"

	"github.com/ishan-1010/future-social-ishan/internal/shared/db"

	"gorm.io/gorm/clause"
)

type Repository interface {
	InsertIgnore(ctx context.Context, p *Profile) error
	Get(ctx context.Context, userID string) (*Profile, error)
	UpdateFields(ctx context.Context, userID string, fields map[string]any) error
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

// InsertIgnore creates the row unless one already exists for the same id.
// Concurrent first logins race here; the primary key conflict resolves it.
func (r *repo) InsertIgnore(ctx context.Context, p *Profile) error {
	return r.store.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(p).Error
}

func (r *repo) Get(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	if err := r.store.DB.WithContext(ctx).First(&p, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) UpdateFields(ctx context.Context, userID string, fields map[string]any) error {
	return r.store.DB.WithContext(ctx).
		Model(&Profile{}).
		Where("id = ?", userID).
		Updates(fields).Error
}
