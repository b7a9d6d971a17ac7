package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dropx/internal/storage"
)

const userColumns = `id, id_number, password_hash, role, name, age, gender, photo_url,
	bank_account, ifsc, phone, date_of_joining, is_active, created_at`

func scanUser(row *sql.Row) (*storage.User, error) {
	var u storage.User
	err := row.Scan(&u.ID, &u.IDNumber, &u.PasswordHash, &u.Role, &u.Name, &u.Age,
		&u.Gender, &u.PhotoURL, &u.BankAccount, &u.IFSC, &u.Phone, &u.DateOfJoining,
		&u.IsActive, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) UserByID(ctx context.Context, id int64) (*storage.User, error) {
	const op = "storage.mysql.UserByID"

	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

// UserByIDNumber only matches active users; disabled accounts cannot log in.
func (s *Storage) UserByIDNumber(ctx context.Context, idNumber string) (*storage.User, error) {
	const op = "storage.mysql.UserByIDNumber"

	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id_number = ? AND is_active = 1 LIMIT 1`, idNumber)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]storage.User, error) {
	const op = "storage.mysql.ListUsers"

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []storage.User
	for rows.Next() {
		var u storage.User
		err := rows.Scan(&u.ID, &u.IDNumber, &u.PasswordHash, &u.Role, &u.Name, &u.Age,
			&u.Gender, &u.PhotoURL, &u.BankAccount, &u.IFSC, &u.Phone, &u.DateOfJoining,
			&u.IsActive, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return users, nil
}

// CreateUser inserts the user and, for worker accounts, the linked employee
// row in the same transaction so payroll never sees a worker without an
// employee record.
func (s *Storage) CreateUser(ctx context.Context, req storage.SaveUser, passwordHash string) (int64, error) {
	const op = "storage.mysql.CreateUser"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO users
			(id_number, password_hash, role, name, age, gender, photo_url,
			 bank_account, ifsc, phone, date_of_joining, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.IDNumber, passwordHash, req.Role, req.Name, req.Age, req.Gender, req.PhotoURL,
		req.BankAccount, req.IFSC, req.Phone, req.DateOfJoining, active)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, fmt.Errorf("%s: id_number=%s: %w", op, req.IDNumber, storage.ErrDuplicate)
		}
		return 0, fmt.Errorf("%s: insert user: %w", op, err)
	}

	userID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	if req.Role == storage.RoleWorker {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO employees (user_id, emp_code, name, role, phone, is_active)
			VALUES (?, ?, ?, ?, ?, ?)`,
			userID, req.IDNumber, req.Name, storage.RoleWorker, req.Phone, active)
		if err != nil {
			return 0, fmt.Errorf("%s: insert employee for user id=%d: %w", op, userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return userID, nil
}

func (s *Storage) UpdateUser(ctx context.Context, id int64, req storage.UpdateUser) error {
	const op = "storage.mysql.UpdateUser"

	_, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET role = COALESCE(?, role),
			is_active = COALESCE(?, is_active),
			name = COALESCE(?, name),
			age = COALESCE(?, age),
			gender = COALESCE(?, gender),
			photo_url = COALESCE(?, photo_url),
			bank_account = COALESCE(?, bank_account),
			ifsc = COALESCE(?, ifsc),
			phone = COALESCE(?, phone),
			date_of_joining = COALESCE(?, date_of_joining)
		WHERE id = ?`,
		req.Role, req.IsActive, req.Name, req.Age, req.Gender, req.PhotoURL,
		req.BankAccount, req.IFSC, req.Phone, req.DateOfJoining, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return nil
}

func (s *Storage) UpdateProfile(ctx context.Context, id int64, req storage.UpdateProfile) error {
	const op = "storage.mysql.UpdateProfile"

	_, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET name = COALESCE(?, name),
			age = COALESCE(?, age),
			gender = COALESCE(?, gender),
			phone = COALESCE(?, phone),
			bank_account = COALESCE(?, bank_account),
			ifsc = COALESCE(?, ifsc),
			photo_url = COALESCE(?, photo_url)
		WHERE id = ?`,
		req.Name, req.Age, req.Gender, req.Phone, req.BankAccount, req.IFSC, req.PhotoURL, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return nil
}

func (s *Storage) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const op = "storage.mysql.UpdatePassword"

	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return nil
}
