package storage

import "time"

// SaveProductionEntry records pieces done by an employee for one lot
// operation on a given date. Entries are append-only.
type SaveProductionEntry struct {
	LotID       int64  `json:"lot_id"`
	OperationID int64  `json:"operation_id"`
	EmployeeID  int64  `json:"employee_id"`
	Pcs         int64  `json:"pcs"`
	EntryDate   string `json:"entry_date"`
}

type ProductionEntry struct {
	ID           int64     `json:"id"`
	LotID        int64     `json:"lot_id"`
	OperationID  int64     `json:"operation_id"`
	EmployeeID   int64     `json:"employee_id"`
	Pcs          int64     `json:"pcs"`
	EntryDate    time.Time `json:"entry_date"`
	OpName       string    `json:"op_name"`
	RatePerPiece float64   `json:"rate_per_piece"`
	EmployeeName string    `json:"employee_name"`
	LotNumber    string    `json:"lot_number"`
}

// ProductionFilter narrows a production listing; zero values mean "no filter".
type ProductionFilter struct {
	From       string
	To         string
	LotID      int64
	EmployeeID int64
}
