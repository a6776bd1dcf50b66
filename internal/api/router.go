package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"workforce.service/internal/api/handler"
)

// NewRouter sets up the gorilla/mux router and defines all API routes.
func NewRouter(h *handler.Handler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	api.HandleFunc("/managers", h.RegisterManager).Methods(http.MethodPost)
	api.HandleFunc("/managers", h.ListManagers).Methods(http.MethodGet)
	api.HandleFunc("/managers/{managerId}/employees", h.EmployeesByManager).Methods(http.MethodGet)

	api.HandleFunc("/employees", h.RegisterEmployee).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id}", h.EmployeeProfile).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", h.UpdateEmployeeProfile).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id}/status", h.UpdateEmployeeStatus).Methods(http.MethodPost)
	api.HandleFunc("/employees/{employeeId}/tasks", h.TasksByEmployee).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/leaves", h.LeavesByEmployee).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/attendance", h.AttendanceForRange).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/payroll", h.PayrollSummary).Methods(http.MethodGet)

	api.HandleFunc("/tasks/{employeeId}", h.AssignTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{taskId}/status", h.UpdateTaskStatus).Methods(http.MethodPut)

	api.HandleFunc("/leaves/{employeeId}", h.RequestLeave).Methods(http.MethodPost)
	api.HandleFunc("/leaves/{leaveId}/decision", h.DecideLeave).Methods(http.MethodPost)
	api.HandleFunc("/leaves", h.LeavesByStatus).Methods(http.MethodGet)

	api.HandleFunc("/attendance/{employeeId}", h.MarkAttendance).Methods(http.MethodPut)

	api.HandleFunc("/announcements", h.CreateAnnouncement).Methods(http.MethodPost)
	api.HandleFunc("/announcements", h.ListAnnouncements).Methods(http.MethodGet)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is operational."))
	}).Methods(http.MethodGet)

	return r
}
