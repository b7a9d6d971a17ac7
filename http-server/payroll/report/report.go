package report

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/context"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, year, month int) ([]byte, error)
}

// GetPayrollReport streams the month's payroll as an xlsx attachment:
// GET /api/payroll/report?month=YYYY-MM
func GetPayrollReport(log *slog.Logger, gen ExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payroll.report.GetPayrollReport"

		month := r.URL.Query().Get("month")
		if month == "" {
			http.Error(w, "month (YYYY-MM) is required", http.StatusBadRequest)
			return
		}
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			http.Error(w, "Invalid month format", http.StatusBadRequest)
			return
		}

		// workbook generation gets more headroom than plain queries
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, parsed.Year(), int(parsed.Month()))
		if err != nil {
			log.Error("failed to generate payroll report", slog.String("op", op),
				slog.String("month", month), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Payroll_%s.xlsx", month)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
