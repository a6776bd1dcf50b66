package handler

import (
	"encoding/json"
	"net/http"

	"workforce.service/internal/core/model"
)

type createAnnouncementRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	announcement, err := h.Announcements.Create(r.Context(), model.Announcement{
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, announcement)
}

func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.Announcements.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}
