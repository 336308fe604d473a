package post

import "time"

type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	AuthorID  string    `gorm:"size:36;index;not null" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  *string   `gorm:"size:500" json:"image_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// PostWithDetails is the feed projection: a post joined with its author's
// profile plus like aggregates computed for the viewing user. Never stored.
type PostWithDetails struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	Content      string    `json:"content"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	Username     *string   `json:"username"`
	AvatarURL    *string   `json:"avatar_url"`
	LikeCount    int64     `json:"like_count"`
	UserHasLiked bool      `json:"user_has_liked"`
}
