package auth

import (
	"net/http"
	"slices"

	"dropx/internal/storage"
)

// Op names a protected surface. Every route is gated through one Op so the
// whole role matrix lives in a single table instead of scattered
// per-route middleware chains.
type Op string

const (
	OpLotsRead         Op = "lots.read"
	OpLotsWrite        Op = "lots.write"
	OpProductionRead   Op = "production.read"
	OpProductionWrite  Op = "production.write"
	OpPayrollRead      Op = "payroll.read"
	OpAdjustmentsWrite Op = "adjustments.write"
	OpEmployeesRead    Op = "employees.read"
	OpUsersManage      Op = "users.manage"
	OpWorkerSelf       Op = "worker.self"
	OpDashboardRead    Op = "dashboard.read"
)

var policy = map[Op][]string{
	OpLotsRead:         {storage.RoleAdmin, storage.RoleSupervisor, storage.RoleIncharge, storage.RoleWorker},
	OpLotsWrite:        {storage.RoleAdmin, storage.RoleSupervisor, storage.RoleIncharge},
	OpProductionRead:   {storage.RoleAdmin, storage.RoleSupervisor, storage.RoleIncharge},
	OpProductionWrite:  {storage.RoleAdmin, storage.RoleSupervisor},
	OpPayrollRead:      {storage.RoleAdmin, storage.RoleIncharge},
	OpAdjustmentsWrite: {storage.RoleAdmin, storage.RoleIncharge},
	OpEmployeesRead:    {storage.RoleAdmin, storage.RoleSupervisor, storage.RoleIncharge},
	OpUsersManage:      {storage.RoleAdmin},
	OpWorkerSelf:       {storage.RoleWorker},
	OpDashboardRead:    {storage.RoleAdmin, storage.RoleSupervisor, storage.RoleIncharge},
}

// Allow passes the request through when the authenticated role is in the
// policy set for op. Must sit behind Authenticate.
func Allow(op Op) func(http.Handler) http.Handler {
	roles := policy[op]
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := FromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, claims.Role) {
				http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
