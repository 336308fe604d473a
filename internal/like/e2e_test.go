package like

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ishan-1010/future-social-ishan/internal/auth"
	"github.com/ishan-1010/future-social-ishan/internal/post"
	"github.com/ishan-1010/future-social-ishan/internal/profile"
	"github.com/ishan-1010/future-social-ishan/internal/shared/db"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
)

// Wires the real handlers and middleware the way cmd/app does, minus the
// external collaborators (Kafka, Redis, MinIO).
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := db.OpenInMemory(t.Name())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := store.DB.AutoMigrate(&auth.User{}, &profile.Profile{}, &post.Post{}, &PostLike{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	profileSvc := profile.NewService(profile.NewRepository(store))
	authSvc := auth.NewService(auth.NewRepository(store), profileSvc)
	postRepo := post.NewRepository(store)
	postSvc := post.NewService(postRepo, nil)
	likeSvc := NewService(NewRepository(store), postRepo, nil)

	mux := http.NewServeMux()
	ah := auth.NewHandler(authSvc)
	mux.Handle("POST /auth/register", httpx.Wrap(ah.Register))
	mux.Handle("POST /auth/login", httpx.Wrap(ah.Login))

	protect := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}
	ph := post.NewHandler(postSvc)
	protect("GET /posts", httpx.Wrap(ph.List))
	protect("POST /posts", httpx.Wrap(ph.Create))
	protect("POST /posts/{post_id}/like", httpx.Wrap(NewHandler(likeSvc).Toggle))
	prh := profile.NewHandler(profileSvc)
	protect("GET /profile", httpx.Wrap(prh.Get))
	protect("PUT /profile", httpx.Wrap(prh.Update))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any, wantStatus int) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: status = %d, want %d (body %v)", method, path, resp.StatusCode, wantStatus, out)
	}
	return out
}

func registerUser(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	out := call(t, srv, http.MethodPost, "/auth/register", "",
		map[string]string{"email": email, "password": "secret1"}, http.StatusCreated)
	tok, _ := out["access_token"].(string)
	if tok == "" {
		t.Fatal("no access token in register response")
	}
	return tok
}

func TestLikeFlowEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	tokenA := registerUser(t, srv, "a@example.com")
	tokenB := registerUser(t, srv, "b@example.com")

	created := call(t, srv, http.MethodPost, "/posts", tokenA,
		map[string]string{"content": "hello world"}, http.StatusCreated)
	postObj, _ := created["post"].(map[string]any)
	postID, _ := postObj["id"].(string)
	if postID == "" {
		t.Fatal("no post id in create response")
	}

	toggled := call(t, srv, http.MethodPost, "/posts/"+postID+"/like", tokenB, nil, http.StatusOK)
	if toggled["userHasLiked"] != true {
		t.Fatalf("toggle response = %v, want userHasLiked=true", toggled)
	}
	if toggled["likeCount"] != float64(1) {
		t.Fatalf("toggle response = %v, want likeCount=1", toggled)
	}

	feedB := call(t, srv, http.MethodGet, "/posts", tokenB, nil, http.StatusOK)
	postsB, _ := feedB["posts"].([]any)
	if len(postsB) != 1 {
		t.Fatalf("feed as B has %d posts, want 1", len(postsB))
	}
	rowB := postsB[0].(map[string]any)
	if rowB["user_has_liked"] != true || rowB["like_count"] != float64(1) {
		t.Fatalf("feed as B: %v, want liked=true count=1", rowB)
	}
	if rowB["username"] != "a" {
		t.Fatalf("feed as B: username = %v, want a", rowB["username"])
	}

	feedA := call(t, srv, http.MethodGet, "/posts", tokenA, nil, http.StatusOK)
	postsA, _ := feedA["posts"].([]any)
	rowA := postsA[0].(map[string]any)
	if rowA["user_has_liked"] != false || rowA["like_count"] != float64(1) {
		t.Fatalf("feed as A: %v, want liked=false count=1", rowA)
	}

	// Unknown post rejects with 404, no silent no-op.
	call(t, srv, http.MethodPost, "/posts/does-not-exist/like", tokenB, nil, http.StatusNotFound)
	// Missing identity rejects with 401.
	call(t, srv, http.MethodPost, "/posts/"+postID+"/like", "", nil, http.StatusUnauthorized)

	// Profile surface: read then edit.
	prof := call(t, srv, http.MethodGet, "/profile", tokenB, nil, http.StatusOK)
	profObj, _ := prof["profile"].(map[string]any)
	if profObj["username"] != "b" {
		t.Fatalf("profile username = %v, want b", profObj["username"])
	}
	upd := call(t, srv, http.MethodPut, "/profile", tokenB,
		map[string]string{"bio": "hi", "username": "bee"}, http.StatusOK)
	updObj, _ := upd["profile"].(map[string]any)
	if updObj["username"] != "bee" || updObj["bio"] != "hi" {
		t.Fatalf("updated profile = %v", updObj)
	}
}
