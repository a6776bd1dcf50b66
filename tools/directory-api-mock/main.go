package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// A simple struct to capture the incoming event data
type StatusChangedEvent struct {
	EventID       string    `json:"eventId"`
	EmployeeID    int64     `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	EmployeeEmail string    `json:"employeeEmail"`
	NewStatus     string    `json:"newStatus"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func statusHandler(w http.ResponseWriter, r *http.Request) {
	var event StatusChangedEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	log.Printf("Received status change for EmployeeID: %d, Status: %s", event.EmployeeID, event.NewStatus)
	w.WriteHeader(http.StatusOK)
}

func main() {
	http.HandleFunc("/", statusHandler)
	log.Println("HR directory mock server starting on port 8081...")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
