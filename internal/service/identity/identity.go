package identity

import (
	"context"
	"errors"
	"fmt"

	"dropx/internal/storage"
)

type Storage interface {
	UserByID(ctx context.Context, id int64) (*storage.User, error)
	EmployeeIDByUserID(ctx context.Context, userID int64) (int64, error)
	EmployeeIDByEmpCode(ctx context.Context, empCode string) (int64, error)
	EmployeeIDByPhone(ctx context.Context, phone string) (int64, error)
}

type Resolver struct {
	storage Storage
}

func NewResolver(storage Storage) *Resolver {
	return &Resolver{storage: storage}
}

// ResolveEmployeeID maps a user to their employee record. The direct user_id
// link is authoritative; emp_code and phone matches only exist for legacy
// rows that were never linked and must not override it. No match is a valid
// empty state (zero income), not an error.
func (r *Resolver) ResolveEmployeeID(ctx context.Context, userID int64) (int64, bool, error) {
	const op = "service.identity.ResolveEmployeeID"

	user, err := r.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	lookups := []func(context.Context) (int64, error){
		func(ctx context.Context) (int64, error) {
			return r.storage.EmployeeIDByUserID(ctx, userID)
		},
		func(ctx context.Context) (int64, error) {
			if user.IDNumber == "" {
				return 0, storage.ErrNotFound
			}
			return r.storage.EmployeeIDByEmpCode(ctx, user.IDNumber)
		},
		func(ctx context.Context) (int64, error) {
			if user.Phone == nil || *user.Phone == "" {
				return 0, storage.ErrNotFound
			}
			return r.storage.EmployeeIDByPhone(ctx, *user.Phone)
		},
	}

	for _, lookup := range lookups {
		id, err := lookup(ctx)
		if err == nil {
			return id, true, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return 0, false, fmt.Errorf("%s: %w", op, err)
		}
	}

	return 0, false, nil
}
