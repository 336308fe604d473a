package post

import (
	"context"

	"github.com/ishan-1010/future-social-ishan/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	Exists(ctx context.Context, id string) (bool, error)
	ListWithDetails(ctx context.Context, viewerID string) ([]PostWithDetails, error)
}

type repo struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repo{store: s} }

func (r *repo) Create(ctx context.Context, p *Post) error {
	return r.store.DB.WithContext(ctx).Create(p).Error
}

func (r *repo) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.store.DB.WithContext(ctx).
		Model(&Post{}).
		Where("id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// ListWithDetails computes the feed in one live query. like_count and
// user_has_liked come straight from post_likes at read time; there is no
// stored counter to drift out of sync.
func (r *repo) ListWithDetails(ctx context.Context, viewerID string) ([]PostWithDetails, error) {
	var rows []PostWithDetails
	err := r.store.DB.WithContext(ctx).Raw(`
		SELECT p.id, p.author_id, p.content, p.image_url, p.created_at,
		       pr.username, pr.avatar_url,
		       (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id) AS like_count,
		       EXISTS (
		           SELECT 1 FROM post_likes l
		           WHERE l.post_id = p.id AND l.user_id = ?
		       ) AS user_has_liked
		FROM posts p
		LEFT JOIN profiles pr ON pr.id = p.author_id
		ORDER BY p.created_at DESC`, viewerID).
		Scan(&rows).Error
	return rows, err
}
