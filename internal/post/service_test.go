package post

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ishan-1010/future-social-ishan/internal/like"
	"github.com/ishan-1010/future-social-ishan/internal/profile"
	"github.com/ishan-1010/future-social-ishan/internal/shared/db"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.OpenInMemory(t.Name())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := store.DB.AutoMigrate(&Post{}, &profile.Profile{}, &like.PostLike{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func strptr(s string) *string { return &s }

func TestCreateValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(NewRepository(store), nil)
	ctx := context.Background()
	author := uuid.NewString()

	cases := []struct {
		name        string
		in          CreatePostRequest
		wantErr     bool
		wantContent string
		wantImage   *string
	}{
		{"plain", CreatePostRequest{Content: "hello"}, false, "hello", nil},
		{"trimmed", CreatePostRequest{Content: "  hello  "}, false, "hello", nil},
		{"empty", CreatePostRequest{Content: ""}, true, "", nil},
		{"whitespace only", CreatePostRequest{Content: "   "}, true, "", nil},
		{"blank image url", CreatePostRequest{Content: "hi", ImageURL: strptr("  ")}, false, "hi", nil},
		{"image url kept", CreatePostRequest{Content: "hi", ImageURL: strptr(" https://example.com/a.png ")}, false, "hi", strptr("https://example.com/a.png")},
	}
	for _, c := range cases {
		p, err := svc.Create(ctx, author, c.in)
		if c.wantErr {
			if !errors.Is(err, httpx.ErrBadInput) {
				t.Fatalf("%s: err = %v, want ErrBadInput", c.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if p.Content != c.wantContent {
			t.Fatalf("%s: content = %q, want %q", c.name, p.Content, c.wantContent)
		}
		if (p.ImageURL == nil) != (c.wantImage == nil) {
			t.Fatalf("%s: image = %v, want %v", c.name, p.ImageURL, c.wantImage)
		}
		if p.ImageURL != nil && *p.ImageURL != *c.wantImage {
			t.Fatalf("%s: image = %q, want %q", c.name, *p.ImageURL, *c.wantImage)
		}
		if p.ID == "" || p.AuthorID != author {
			t.Fatalf("%s: bad post identity %+v", c.name, p)
		}
	}
}

func TestListOrdering(t *testing.T) {
	store := newTestStore(t)
	repo := NewRepository(store)
	ctx := context.Background()
	author := uuid.NewString()

	base := time.Now().Add(-time.Hour).UTC()
	for i := 0; i < 3; i++ {
		p := &Post{
			ID:        uuid.NewString(),
			AuthorID:  author,
			Content:   "post",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := repo.ListWithDetails(ctx, author)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CreatedAt.After(rows[i-1].CreatedAt) {
			t.Fatalf("rows not ordered newest first: %v before %v",
				rows[i-1].CreatedAt, rows[i].CreatedAt)
		}
	}
}

func TestFeedViewerFlags(t *testing.T) {
	store := newTestStore(t)
	repo := NewRepository(store)
	likeRepo := like.NewRepository(store)
	profileRepo := profile.NewRepository(store)
	svc := NewService(repo, nil)
	ctx := context.Background()

	userA := uuid.NewString()
	userB := uuid.NewString()
	name := "alice"
	if err := profileRepo.InsertIgnore(ctx, &profile.Profile{ID: userA, Username: &name}); err != nil {
		t.Fatalf("profile: %v", err)
	}

	p, err := svc.Create(ctx, userA, CreatePostRequest{Content: "from A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := likeRepo.Insert(ctx, p.ID, userB); err != nil {
		t.Fatalf("like: %v", err)
	}

	asB, err := svc.List(ctx, userB)
	if err != nil {
		t.Fatalf("list as B: %v", err)
	}
	if len(asB) != 1 || !asB[0].UserHasLiked || asB[0].LikeCount != 1 {
		t.Fatalf("as B: %+v, want liked=true count=1", asB)
	}
	if asB[0].Username == nil || *asB[0].Username != "alice" {
		t.Fatalf("as B: username = %v, want alice", asB[0].Username)
	}

	asA, err := svc.List(ctx, userA)
	if err != nil {
		t.Fatalf("list as A: %v", err)
	}
	if len(asA) != 1 || asA[0].UserHasLiked || asA[0].LikeCount != 1 {
		t.Fatalf("as A: %+v, want liked=false count=1", asA)
	}
}
