package auth

import (
	"net/http"

	"github.com/ishan-1010/future-social-ishan/internal/shared/httpx"
	"github.com/ishan-1010/future-social-ishan/internal/shared/jwt"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[RegisterReq](r)
	if err != nil {
		return err
	}
	u, err := h.svc.Register(r.Context(), body.Email, body.Password)
	if err != nil {
		return err
	}
	token, _ := jwt.Make(u.ID)
	httpx.WriteJSON(w, map[string]any{
		"user_id": u.ID, "email": u.Email, "access_token": token,
	}, http.StatusCreated)
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[LoginReq](r)
	if err != nil {
		return err
	}
	u, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		return err
	}
	token, _ := jwt.Make(u.ID)
	httpx.WriteJSON(w, map[string]any{
		"message": "login successful", "user_id": u.ID, "email": u.Email, "access_token": token,
	}, http.StatusOK)
	return nil
}
