package like

import (
	"net/http"

	"github.com/ishan-1010/future-social-ishan/internal/metrics"
	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	pid := r.PathValue("post_id")
	res, err := h.svc.Toggle(r.Context(), pid, uid)
	if err != nil {
		return err
	}
	metrics.LikesToggled.Inc()
	httpx.WriteJSON(w, res, http.StatusOK)
	return nil
}
