package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadjustments "dropx/http-server/adjustments/get"
	saveadjustments "dropx/http-server/adjustments/save"
	"dropx/http-server/auth/login"
	getdashboard "dropx/http-server/dashboard/get"
	getemployees "dropx/http-server/employees/get"
	getlots "dropx/http-server/lots/get"
	lotprogress "dropx/http-server/lots/progress"
	savelots "dropx/http-server/lots/save"
	uplots "dropx/http-server/lots/update"
	getme "dropx/http-server/me/get"
	upme "dropx/http-server/me/update"
	getpayroll "dropx/http-server/payroll/get"
	payrollreport "dropx/http-server/payroll/report"
	getproduction "dropx/http-server/production/get"
	saveproduction "dropx/http-server/production/save"
	savephoto "dropx/http-server/upload/save"
	getusers "dropx/http-server/users/get"
	saveusers "dropx/http-server/users/save"
	upusers "dropx/http-server/users/update"
	getworker "dropx/http-server/worker/get"
	"dropx/internal/config"
	"dropx/internal/middleware/auth"
	"dropx/internal/service/dashboard"
	"dropx/internal/service/payroll"
	"dropx/internal/service/progress"
	"dropx/internal/service/report"
	"dropx/internal/service/upload"
	"dropx/internal/service/worker"
	"dropx/internal/storage/mysql"
)

type services struct {
	progress  *progress.Service
	payroll   *payroll.Service
	worker    *worker.Service
	dashboard *dashboard.Service
	report    *report.PayrollReportService
	upload    *upload.Service
}

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, svc services) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Post("/api/auth/login", login.Login(log, storage, cfg.JWTSecret, cfg.TokenTTL))

	router.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(cfg.JWTSecret))

		// lots: everyone reads, management writes
		r.With(auth.Allow(auth.OpLotsRead)).Get("/api/lots", getlots.GetLots(log, storage))
		r.With(auth.Allow(auth.OpLotsRead)).Get("/api/lots/progress", lotprogress.GetLotsProgress(log, svc.progress))
		r.With(auth.Allow(auth.OpLotsRead)).Get("/api/lots/{lotId}/progress", lotprogress.GetLotProgress(log, svc.progress))
		r.With(auth.Allow(auth.OpLotsRead)).Get("/api/lots/{lotId}/operations", getlots.GetLotOperations(log, storage))
		r.With(auth.Allow(auth.OpLotsWrite)).Post("/api/lots", savelots.SaveLot(log, storage))
		r.With(auth.Allow(auth.OpLotsWrite)).Put("/api/lots/{id}", uplots.UpdateLot(log, storage))

		// production entries are append-only
		r.With(auth.Allow(auth.OpProductionWrite)).Post("/api/production", saveproduction.SaveEntry(log, storage))
		r.With(auth.Allow(auth.OpProductionRead)).Get("/api/production", getproduction.GetEntries(log, storage))

		r.With(auth.Allow(auth.OpPayrollRead)).Get("/api/payroll", getpayroll.GetPayroll(log, svc.payroll))
		r.With(auth.Allow(auth.OpPayrollRead)).Get("/api/payroll/report", payrollreport.GetPayrollReport(log, svc.report))
		r.With(auth.Allow(auth.OpAdjustmentsWrite)).Post("/api/adjustments", saveadjustments.SaveAdjustment(log, storage))
		r.With(auth.Allow(auth.OpPayrollRead)).Get("/api/adjustments", getadjustments.GetAdjustments(log, storage))

		r.With(auth.Allow(auth.OpWorkerSelf)).Get("/api/worker/summary", getworker.GetSummary(log, svc.worker))
		r.With(auth.Allow(auth.OpWorkerSelf)).Get("/api/worker/monthly", getworker.GetMonthly(log, svc.worker))

		r.With(auth.Allow(auth.OpEmployeesRead)).Get("/api/employees", getemployees.GetEmployees(log, storage))

		r.With(auth.Allow(auth.OpUsersManage)).Get("/api/users", getusers.GetUsers(log, storage))
		r.With(auth.Allow(auth.OpUsersManage)).Post("/api/users", saveusers.SaveUser(log, storage))
		r.With(auth.Allow(auth.OpUsersManage)).Put("/api/users/{id}", upusers.UpdateUser(log, storage))
		// password change checks admin-or-self inside the handler
		r.Put("/api/users/{id}/password", upusers.UpdatePassword(log, storage))

		r.With(auth.Allow(auth.OpDashboardRead)).Get("/api/dashboard/summary", getdashboard.GetSummary(log, svc.dashboard))

		r.Get("/api/me", getme.GetMe(log, storage))
		r.Put("/api/me", upme.UpdateMe(log, storage))

		r.Post("/api/upload/photo", savephoto.SavePhoto(log, svc.upload))
	})

	// uploaded profile photos
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(svc.upload.Dir())))
	router.Handle("/uploads/*", fileServer)

	return router
}
