package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/middleware/auth"
	"dropx/internal/storage"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
)

type UserProvider interface {
	UserByIDNumber(ctx context.Context, idNumber string) (*storage.User, error)
}

type Request struct {
	IDNumber string `json:"id_number"`
	Password string `json:"password"`
}

type Response struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID       int64  `json:"id"`
	IDNumber string `json:"id_number"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// Login checks id_number + password against the active users and hands out
// a signed token. Unknown login and wrong password produce the same answer.
func Login(log *slog.Logger, users UserProvider, secret string, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.Login"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}
		if req.IDNumber == "" || req.Password == "" {
			http.Error(w, "id_number and password are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := users.UserByIDNumber(ctx, req.IDNumber)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Invalid credentials", http.StatusBadRequest)
				return
			}
			log.Error("failed to load user", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			http.Error(w, "Invalid credentials", http.StatusBadRequest)
			return
		}

		token, err := auth.NewToken(secret, tokenTTL, user)
		if err != nil {
			log.Error("failed to sign token", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			Token: token,
			User: UserInfo{
				ID:       user.ID,
				IDNumber: user.IDNumber,
				Role:     user.Role,
				Name:     user.Name,
			},
		})
	}
}
