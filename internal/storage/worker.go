package storage

import "time"

type WorkerEntry struct {
	ID           int64     `json:"id"`
	EntryDate    time.Time `json:"entry_date"`
	LotNumber    string    `json:"lot_number"`
	OpName       string    `json:"op_name"`
	RatePerPiece float64   `json:"rate_per_piece"`
	Pcs          int64     `json:"pcs"`
	Income       float64   `json:"income"`
}

type WorkerSummary struct {
	TotalIncome float64       `json:"total_income"`
	Entries     []WorkerEntry `json:"entries"`
}

type MonthlyIncome struct {
	Month       string  `json:"month"`
	TotalIncome float64 `json:"total_income"`
}
