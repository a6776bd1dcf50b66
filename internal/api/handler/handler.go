package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"workforce.service/internal/core"
)

// Handler is the HTTP boundary of the workflow coordinator. It resolves
// ids, invokes the right service, and translates the core error taxonomy
// into status codes. It holds no state of its own.
type Handler struct {
	Auth          *core.AuthService
	Employees     *core.EmployeeService
	Managers      *core.ManagerService
	Tasks         *core.TaskService
	Leaves        *core.LeaveService
	Attendance    *core.AttendanceService
	Payroll       *core.PayrollService
	Announcements *core.AnnouncementService
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the core taxonomy to boundary-facing responses. Anything
// outside the taxonomy is a generic internal failure; the concrete error
// stays in the logs, not the response.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrEmployeeNotFound),
		errors.Is(err, core.ErrManagerNotFound),
		errors.Is(err, core.ErrTaskNotFound),
		errors.Is(err, core.ErrLeaveNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, core.ErrInvalidStatus),
		errors.Is(err, core.ErrInvalidRange),
		errors.Is(err, core.ErrInvalidMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrInvalidTransition),
		errors.Is(err, core.ErrOverlappingLeave):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, core.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, core.ErrAccountNotActive):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
