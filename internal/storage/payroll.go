package storage

import "time"

const (
	AdjustmentIncentive = "incentive"
	AdjustmentDeduction = "deduction"
)

// PayrollRow is one employee's month: valued production plus manual
// adjustments. Employees with no activity still appear with zero sums.
type PayrollRow struct {
	EmployeeID int64   `json:"employee_id"`
	EmpCode    string  `json:"emp_code"`
	Name       string  `json:"name"`
	Earnings   float64 `json:"earnings"`
	Incentives float64 `json:"incentives"`
	Deductions float64 `json:"deductions"`
	NetSalary  float64 `json:"net_salary"`
}

type SaveAdjustment struct {
	EmployeeID int64   `json:"employee_id"`
	Kind       string  `json:"kind"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
}

type Adjustment struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Kind         string    `json:"kind"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
}
