package post

import (
	"net/http"

	"github.com/ishan-1010/future-social-ishan/internal/metrics"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreatePostRequest](r)
	if err != nil {
		return err
	}
	p, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return err
	}
	metrics.PostsCreated.Inc()
	httpx.WriteJSON(w, map[string]any{"post": p}, http.StatusCreated)
	return nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	posts, err := h.svc.List(r.Context(), uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"posts": posts}, http.StatusOK)
	return nil
}
