package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

type leaveRequestBody struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h *Handler) RequestLeave(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}

	var req leaveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		http.Error(w, "Invalid start date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		http.Error(w, "Invalid end date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	leave, err := h.Leaves.Request(r.Context(), employeeID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, leave)
}

func (h *Handler) DecideLeave(w http.ResponseWriter, r *http.Request) {
	leaveID, err := pathID(r, "leaveId")
	if err != nil {
		http.Error(w, "Invalid leave id", http.StatusBadRequest)
		return
	}

	approve := r.URL.Query().Get("approve") == "true"

	leave, err := h.Leaves.Decide(r.Context(), leaveID, approve)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leave)
}

func (h *Handler) LeavesByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}

	leaves, err := h.Leaves.ByEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leaves)
}

func (h *Handler) LeavesByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	leaves, err := h.Leaves.ByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leaves)
}
