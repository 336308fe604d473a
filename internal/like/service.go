package like

import (
	"context"
	"fmt"

	"github.com/ishan-1010/future-social-ishan/internal/events"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
)

// PostFinder is the slice of the post repository the toggle needs.
type PostFinder interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service interface {
	Toggle(ctx context.Context, postID, userID string) (*ToggleResult, error)
}

type service struct {
	repo     Repository
	posts    PostFinder
	producer *events.Producer
}

func NewService(r Repository, posts PostFinder, p *events.Producer) Service {
	return &service{repo: r, posts: posts, producer: p}
}

// Toggle flips the like relationship and reports the resulting state.
//
// The check-then-act between Exists and Insert/Delete is not locked in the
// application; the composite primary key on post_likes serializes it. Two
// users racing on the same post both commit and both end up in the count.
// The same user racing against itself collapses onto one row at most, and
// the second call simply observes whatever the first one left behind.
// The count is recomputed from the join table after the mutation commits;
// nothing here trusts a stored counter.
func (s *service) Toggle(ctx context.Context, postID, userID string) (*ToggleResult, error) {
	ok, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("post %s: %w", postID, httpx.ErrNotFound)
	}

	liked, err := s.repo.Exists(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.repo.Delete(ctx, postID, userID)
	} else {
		err = s.repo.Insert(ctx, postID, userID)
	}
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Count(ctx, postID)
	if err != nil {
		return nil, err
	}
	res := &ToggleResult{LikeCount: count, UserHasLiked: !liked}
	s.producer.Publish(ctx, postID, events.LikeToggled{
		PostID: postID, UserID: userID, Liked: res.UserHasLiked, LikeCount: count,
	})
	return res, nil
}
