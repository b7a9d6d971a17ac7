package mysql

import (
	"context"
	"fmt"

	"dropx/internal/storage"
)

// PayrollForMonth returns every employee with their valued production and
// adjustment sums for one calendar month. Both sides are aggregated per
// employee before joining; joining the raw tables straight onto employees
// would multiply the sums when a month has rows in both. Months are matched
// on YEAR()/MONTH() of the date, not on a string prefix.
func (s *Storage) PayrollForMonth(ctx context.Context, year, month int) ([]storage.PayrollRow, error) {
	const op = "storage.mysql.PayrollForMonth"

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			e.id, e.emp_code, e.name,
			COALESCE(v.earnings, 0),
			COALESCE(a.incentives, 0),
			COALESCE(a.deductions, 0)
		FROM employees e
		LEFT JOIN (
			SELECT employee_id, SUM(amount) AS earnings
			FROM v_production_valued
			WHERE YEAR(entry_date) = ? AND MONTH(entry_date) = ?
			GROUP BY employee_id
		) v ON v.employee_id = e.id
		LEFT JOIN (
			SELECT employee_id,
				SUM(CASE WHEN kind = 'incentive' THEN amount ELSE 0 END) AS incentives,
				SUM(CASE WHEN kind = 'deduction' THEN amount ELSE 0 END) AS deductions
			FROM employee_adjustments
			WHERE YEAR(date) = ? AND MONTH(date) = ?
			GROUP BY employee_id
		) a ON a.employee_id = e.id
		ORDER BY e.name ASC`,
		year, month, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: year=%d month=%d: %w", op, year, month, err)
	}
	defer rows.Close()

	var payroll []storage.PayrollRow
	for rows.Next() {
		var r storage.PayrollRow
		err := rows.Scan(&r.EmployeeID, &r.EmpCode, &r.Name, &r.Earnings, &r.Incentives, &r.Deductions)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		payroll = append(payroll, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return payroll, nil
}

func (s *Storage) SaveAdjustment(ctx context.Context, req storage.SaveAdjustment) (int64, error) {
	const op = "storage.mysql.SaveAdjustment"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO employee_adjustments (employee_id, kind, amount, date)
		VALUES (?, ?, ?, ?)`,
		req.EmployeeID, req.Kind, req.Amount, req.Date)
	if err != nil {
		return 0, fmt.Errorf("%s: employee id=%d: %w", op, req.EmployeeID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) ListAdjustments(ctx context.Context, year, month int) ([]storage.Adjustment, error) {
	const op = "storage.mysql.ListAdjustments"

	rows, err := s.db.QueryContext(ctx, `
		SELECT ea.id, ea.employee_id, e.name, ea.kind, ea.amount, ea.date
		FROM employee_adjustments ea
		JOIN employees e ON e.id = ea.employee_id
		WHERE YEAR(ea.date) = ? AND MONTH(ea.date) = ?
		ORDER BY ea.date DESC, ea.id DESC`,
		year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: year=%d month=%d: %w", op, year, month, err)
	}
	defer rows.Close()

	var adjustments []storage.Adjustment
	for rows.Next() {
		var a storage.Adjustment
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.Kind, &a.Amount, &a.Date)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return adjustments, nil
}
