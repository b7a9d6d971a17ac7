package storage

import "time"

const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleIncharge   = "incharge"
	RoleWorker     = "worker"
)

type User struct {
	ID            int64     `json:"id"`
	IDNumber      string    `json:"id_number"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	Name          string    `json:"name"`
	Age           *int64    `json:"age"`
	Gender        *string   `json:"gender"`
	PhotoURL      *string   `json:"photo_url"`
	BankAccount   *string   `json:"bank_account"`
	IFSC          *string   `json:"ifsc"`
	Phone         *string   `json:"phone"`
	DateOfJoining *string   `json:"date_of_joining"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type SaveUser struct {
	IDNumber      string  `json:"id_number"`
	Password      string  `json:"password"`
	Role          string  `json:"role"`
	Name          string  `json:"name"`
	Age           *int64  `json:"age"`
	Gender        *string `json:"gender"`
	PhotoURL      *string `json:"photo_url"`
	BankAccount   *string `json:"bank_account"`
	IFSC          *string `json:"ifsc"`
	Phone         *string `json:"phone"`
	DateOfJoining *string `json:"date_of_joining"`
	IsActive      *bool   `json:"is_active"`
}

// UpdateUser carries partial updates; nil fields are left untouched.
type UpdateUser struct {
	Role          *string `json:"role"`
	IsActive      *bool   `json:"is_active"`
	Name          *string `json:"name"`
	Age           *int64  `json:"age"`
	Gender        *string `json:"gender"`
	PhotoURL      *string `json:"photo_url"`
	BankAccount   *string `json:"bank_account"`
	IFSC          *string `json:"ifsc"`
	Phone         *string `json:"phone"`
	DateOfJoining *string `json:"date_of_joining"`
}

// UpdateProfile is the self-service subset of UpdateUser: no role or
// active-flag changes through /api/me.
type UpdateProfile struct {
	Name        *string `json:"name"`
	Age         *int64  `json:"age"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone"`
	BankAccount *string `json:"bank_account"`
	IFSC        *string `json:"ifsc"`
	PhotoURL    *string `json:"photo_url"`
}
