package media

import (
	"fmt"
	"net/http"

	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) error {
	if _, err := httpx.UserFromCtx(r); err != nil {
		return err
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return fmt.Errorf("%w: %v", httpx.ErrBadInput, err)
	}
	defer file.Close()

	res, err := h.svc.Upload(r.Context(), file, header)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, res, http.StatusCreated)
	return nil
}

func (h *Handler) RedirectToSignedGet(w http.ResponseWriter, r *http.Request) error {
	key := r.PathValue("key")
	if key == "" {
		return fmt.Errorf("%w: missing key", httpx.ErrBadInput)
	}
	u, err := h.svc.SignedURL(r.Context(), key)
	if err != nil {
		return err
	}
	http.Redirect(w, r, u, http.StatusTemporaryRedirect)
	return nil
}
