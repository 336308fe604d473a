package media

type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
