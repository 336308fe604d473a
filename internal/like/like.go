package like

import "time"

// PostLike models "this user likes this post". Existence of the row is the
// whole payload; the composite primary key is what keeps concurrent likes
// from the same user down to a single row.
type PostLike struct {
	PostID    string `gorm:"primaryKey;size:36" json:"post_id"`
	UserID    string `gorm:"primaryKey;size:36" json:"user_id"`
	CreatedAt time.Time
}

type ToggleResult struct {
	LikeCount    int64 `json:"likeCount"`
	UserHasLiked bool  `json:"userHasLiked"`
}
