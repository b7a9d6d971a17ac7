package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dropx/internal/storage"
)

func (s *Storage) ListEmployees(ctx context.Context, limit, offset int) ([]storage.Employee, error) {
	const op = "storage.mysql.ListEmployees"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, emp_code, name, role, phone, is_active, created_at
		FROM employees
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var employees []storage.Employee
	for rows.Next() {
		var e storage.Employee
		err := rows.Scan(&e.ID, &e.UserID, &e.EmpCode, &e.Name, &e.Role, &e.Phone,
			&e.IsActive, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return employees, nil
}

func (s *Storage) employeeIDBy(ctx context.Context, op, query string, arg interface{}) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) EmployeeIDByUserID(ctx context.Context, userID int64) (int64, error) {
	return s.employeeIDBy(ctx, "storage.mysql.EmployeeIDByUserID",
		`SELECT id FROM employees WHERE user_id = ? LIMIT 1`, userID)
}

func (s *Storage) EmployeeIDByEmpCode(ctx context.Context, empCode string) (int64, error) {
	return s.employeeIDBy(ctx, "storage.mysql.EmployeeIDByEmpCode",
		`SELECT id FROM employees WHERE emp_code = ? LIMIT 1`, empCode)
}

func (s *Storage) EmployeeIDByPhone(ctx context.Context, phone string) (int64, error) {
	return s.employeeIDBy(ctx, "storage.mysql.EmployeeIDByPhone",
		`SELECT id FROM employees WHERE phone = ? LIMIT 1`, phone)
}
