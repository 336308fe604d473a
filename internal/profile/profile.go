package profile

import "time"

// Profile is a one-to-one shadow of an authenticated user. ID equals the
// user id issued at registration.
type Profile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  *string   `gorm:"size:100" json:"username"`
	Bio       *string   `gorm:"size:400" json:"bio"`
	AvatarURL *string   `gorm:"size:500" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateReq struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}
