package auth

import "time"

type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;size:100"`
	PassHash  string `gorm:"size:255"`
	CreatedAt time.Time
}
