package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"workforce.service/internal/core/model"
)

type registerEmployeeRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	BasicSalary float64 `json:"basicSalary"`
	DailyWage   float64 `json:"dailyWage"`
}

func (h *Handler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	managerID, err := strconv.ParseInt(r.URL.Query().Get("managerId"), 10, 64)
	if err != nil {
		http.Error(w, "managerId is required", http.StatusBadRequest)
		return
	}

	var req registerEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" {
		http.Error(w, "Name and email are required", http.StatusBadRequest)
		return
	}

	employee, err := h.Employees.Register(r.Context(), managerID, model.Employee{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		BasicSalary: req.BasicSalary,
		DailyWage:   req.DailyWage,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

func (h *Handler) EmployeeProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}

	employee, err := h.Employees.Profile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) UpdateEmployeeProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}

	var req registerEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	employee, err := h.Employees.UpdateProfile(r.Context(), model.Employee{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		BasicSalary: req.BasicSalary,
		DailyWage:   req.DailyWage,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) EmployeesByManager(w http.ResponseWriter, r *http.Request) {
	managerID, err := pathID(r, "managerId")
	if err != nil {
		http.Error(w, "Invalid manager id", http.StatusBadRequest)
		return
	}

	employees, err := h.Employees.ByManager(r.Context(), managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// UpdateEmployeeStatus runs the approval machine; the status email and
// directory sync fan out behind it.
func (h *Handler) UpdateEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	employee, err := h.Employees.TransitionStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

type registerManagerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) RegisterManager(w http.ResponseWriter, r *http.Request) {
	var req registerManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" {
		http.Error(w, "Name and email are required", http.StatusBadRequest)
		return
	}

	manager, err := h.Managers.Register(r.Context(), model.Manager{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, manager)
}

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.Managers.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, managers)
}
