package like

import (
	"context"

	"github.com/ishan-1010/future-social-ishan/internal/shared/db"

	"gorm.io/gorm/clause"
)

type Repository interface {
	Exists(ctx context.Context, postID, userID string) (bool, error)
	Insert(ctx context.Context, postID, userID string) error
	Delete(ctx context.Context, postID, userID string) error
	Count(ctx context.Context, postID string) (int64, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Exists(ctx context.Context, postID, userID string) (bool, error) {
	var n int64
	err := r.store.DB.WithContext(ctx).
		Model(&PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&n).Error
	return n > 0, err
}

// Insert relies on the composite primary key: a duplicate from a racing
// request lands on the conflict clause instead of creating a second row.
func (r *repo) Insert(ctx context.Context, postID, userID string) error {
	return r.store.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&PostLike{PostID: postID, UserID: userID}).Error
}

func (r *repo) Delete(ctx context.Context, postID, userID string) error {
	return r.store.DB.WithContext(ctx).
		Delete(&PostLike{}, "post_id = ? AND user_id = ?", postID, userID).Error
}

func (r *repo) Count(ctx context.Context, postID string) (int64, error) {
	var n int64
	err := r.store.DB.WithContext(ctx).
		Model(&PostLike{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return n, err
}
