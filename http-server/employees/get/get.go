package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dropx/internal/storage"
	"github.com/go-chi/render"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type EmployeeLister interface {
	ListEmployees(ctx context.Context, limit, offset int) ([]storage.Employee, error)
}

// GetEmployees lists employees, newest first: GET /api/employees?limit=&offset=
func GetEmployees(log *slog.Logger, employees EmployeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.employees.get.GetEmployees"

		limit := defaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		offset := 0
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := employees.ListEmployees(ctx, limit, offset)
		if err != nil {
			log.Error("failed to load employees", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []storage.Employee{}
		}

		render.JSON(w, r, result)
	}
}
