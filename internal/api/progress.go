package api

import (
	"encoding/json"
	"net/http"

	"example.com/fitlife/internal/auth"
	"example.com/fitlife/internal/domain"
)

func (h *Handler) userProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	switch r.Method {
	case http.MethodGet:
		start, err := parseDateParam(r, "startDate")
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		end, err := parseDateParam(r, "endDate")
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}

		records, err := h.service.ListProgress(r.Context(), user.ID, start, end)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	case http.MethodPost:
		var req CreateProgressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}

		record := domain.ProgressRecord{
			UserID:           user.ID,
			WorkoutCompleted: req.WorkoutCompleted,
			WorkoutID:        req.WorkoutID,
			WorkoutDuration:  req.WorkoutDuration,
			CaloriesBurned:   req.CaloriesBurned,
			CaloriesConsumed: req.CaloriesConsumed,
			WaterIntake:      req.WaterIntake,
			Weight:           req.Weight,
			Notes:            req.Notes,
		}
		if req.Date != nil {
			record.Date = *req.Date
		}

		stored, err := h.service.RecordProgress(r.Context(), record)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, stored)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}
