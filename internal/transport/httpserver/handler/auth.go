package handler

import (
	"net/http"
	"time"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, r, "auth.signup", err)
		return
	}

	created, err := h.Users.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "auth.signup", err, "username", req.Username)
		return
	}

	h.log.Info("auth.signup: user created", "user_id", created.ID)
	writeJSON(w, http.StatusCreated, userResponse{
		ID:        created.ID,
		Username:  created.Username,
		CreatedAt: created.CreatedAt,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeServiceError(w, r, "auth.login", err)
		return
	}

	found, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "auth.login", err, "username", req.Username)
		return
	}

	token, expiresAt, err := h.tokens.Issue(found.ID, found.Username)
	if err != nil {
		h.writeServiceError(w, r, "auth.login", err, "user_id", found.ID)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User: userResponse{
			ID:        found.ID,
			Username:  found.Username,
			CreatedAt: found.CreatedAt,
		},
	})
}

// Logout only acknowledges; the client drops its token.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "logged out"})
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	found, err := h.Users.GetByID(r.Context(), user.ID)
	if err != nil {
		h.writeServiceError(w, r, "auth.me", err, "user_id", user.ID)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:        found.ID,
		Username:  found.Username,
		CreatedAt: found.CreatedAt,
	})
}
