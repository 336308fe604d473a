package post

type CreatePostRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl"`
}
