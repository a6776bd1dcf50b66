package handler

import (
	"net/http"
)

// PayrollSummary recomputes the summary for one employee and month; there
// is nothing to persist, so GET is the whole surface.
func (h *Handler) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		http.Error(w, "Invalid employee id", http.StatusBadRequest)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		http.Error(w, "month is required", http.StatusBadRequest)
		return
	}

	summary, err := h.Payroll.ComputeMonthlySummary(r.Context(), employeeID, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
