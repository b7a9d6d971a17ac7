package storage

import "time"

type Employee struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"user_id"`
	EmpCode   string    `json:"emp_code"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
