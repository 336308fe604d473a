package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = envOr("SEED_BASE_URL", "http://localhost:8080")

type account struct {
	Email string
	Token string
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	users := envIntOr("SEED_USERS", 5)
	postsPer := envIntOr("SEED_POSTS_PER_USER", 3)

	accounts := make([]account, 0, users)
	for i := 0; i < users; i++ {
		email := gofakeit.Email()
		token := register(email, "123456")
		if token == "" {
			log.Fatal("could not obtain token, aborting seeding process")
		}
		accounts = append(accounts, account{Email: email, Token: token})
	}

	postIDs := []string{}
	for _, acc := range accounts {
		for j := 0; j < postsPer; j++ {
			if id := createPost(acc.Token, gofakeit.Sentence(12)); id != "" {
				postIDs = append(postIDs, id)
			}
		}
	}

	// Random likes: every account toggles a handful of posts.
	for _, acc := range accounts {
		for _, pid := range postIDs {
			if gofakeit.Bool() {
				toggleLike(acc.Token, pid)
			}
		}
	}

	// Touch profiles so the feed has usernames and bios.
	for _, acc := range accounts {
		updateProfile(acc.Token, gofakeit.Username(), gofakeit.HipsterSentence(8))
	}

	listPosts(accounts[0].Token)
	log.Printf("seeded %d users, %d posts", len(accounts), len(postIDs))
}

func register(email, password string) string {
	body := map[string]string{"email": email, "password": password}
	resp := doJSON("POST", "/auth/register", "", body)
	token, _ := resp["access_token"].(string)
	return token
}

func createPost(token, content string) string {
	resp := doJSON("POST", "/posts", token, map[string]any{"content": content})
	post, _ := resp["post"].(map[string]any)
	id, _ := post["id"].(string)
	return id
}

func toggleLike(token, postID string) {
	doJSON("POST", fmt.Sprintf("/posts/%s/like", postID), token, nil)
}

func updateProfile(token, username, bio string) {
	doJSON("PUT", "/profile", token, map[string]any{"username": username, "bio": bio})
}

func listPosts(token string) {
	resp := doJSON("GET", "/posts", token, nil)
	posts, _ := resp["posts"].([]any)
	log.Printf("feed has %d posts", len(posts))
}

func doJSON(method, path, token string, body any) map[string]any {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("encode %s %s: %v", method, path, err)
		}
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode >= 400 {
		log.Printf("%s %s -> %d: %v", method, path, resp.StatusCode, out["error"])
	}
	return out
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envIntOr(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			return n
		}
	}
	return def
}
