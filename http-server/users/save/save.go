package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
)

type UserCreator interface {
	CreateUser(ctx context.Context, req storage.SaveUser, passwordHash string) (int64, error)
}

var validRoles = map[string]bool{
	storage.RoleAdmin:      true,
	storage.RoleSupervisor: true,
	storage.RoleIncharge:   true,
	storage.RoleWorker:     true,
}

// SaveUser creates an account. Worker accounts get a linked employee row in
// the same transaction, see storage.CreateUser.
func SaveUser(log *slog.Logger, users UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.save.SaveUser"

		var req storage.SaveUser
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if req.IDNumber == "" || req.Password == "" || req.Role == "" || req.Name == "" {
			http.Error(w, "id_number, password, role, name are required", http.StatusBadRequest)
			return
		}
		if !validRoles[req.Role] {
			http.Error(w, "role must be admin, supervisor, incharge or worker", http.StatusBadRequest)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		userID, err := users.CreateUser(ctx, req, string(hash))
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				http.Error(w, "id_number already exists", http.StatusConflict)
				return
			}
			log.Error("failed to create user", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("user created",
			slog.Int64("user_id", userID),
			slog.String("role", req.Role),
		)

		render.JSON(w, r, map[string]interface{}{
			"message": "User created",
			"id":      userID,
		})
	}
}
