package profile

import (
	"net/http"

	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(r.Context(), uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"profile": p}, http.StatusOK)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[UpdateReq](r)
	if err != nil {
		return err
	}
	p, err := h.svc.Update(r.Context(), uid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"profile": p}, http.StatusOK)
	return nil
}
