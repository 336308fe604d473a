package migrate

import (
	"github.com/ishan-1010/future-social-ishan/internal/auth"
	"github.com/ishan-1010/future-social-ishan/internal/like"
	"github.com/ishan-1010/future-social-ishan/internal/post"
	"github.com/ishan-1010/future-social-ishan/internal/profile"
	"github.com/ishan-1010/future-social-ishan/internal/shared/db"
)

func AutoMigrateAll(store *db.Store) error {
	return store.DB.AutoMigrate(
		&auth.User{},
		&profile.Profile{},
		&post.Post{},
		&like.PostLike{},
	)
}
