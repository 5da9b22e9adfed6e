package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"example.com/fitlife/internal/auth"
	"example.com/fitlife/internal/domain"
)

func (h *Handler) classes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listClasses(w, r)
	case http.MethodPost:
		h.createClass(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
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

	classes, err := h.service.ListClasses(r.Context(), r.URL.Query().Get("type"), start, end)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

func (h *Handler) createClass(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}
	if user.Role != domain.RoleTrainer {
		writeError(w, http.StatusForbidden, "forbidden", "only trainers can create classes")
		return
	}

	var req CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	class, err := h.service.CreateClass(r.Context(), domain.Class{
		Name:            req.Name,
		Description:     req.Description,
		TrainerID:       user.ID,
		StartTime:       req.StartTime,
		Duration:        req.Duration,
		MaxParticipants: req.MaxParticipants,
		Type:            req.Type,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, class)
}

func (h *Handler) classByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/classes/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid class id")
		return
	}

	class, err := h.service.GetClass(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (h *Handler) enrollments(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	switch r.Method {
	case http.MethodGet:
		enrollments, err := h.service.ListEnrollments(r.Context(), user.ID)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, enrollments)
	case http.MethodPost:
		var req CreateEnrollmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}

		enrollment, err := h.service.Enroll(r.Context(), req.ClassID, user.ID)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, enrollment)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) enrollmentByClass(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	classID, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/enrollments/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid class id")
		return
	}

	if err := h.service.Unenroll(r.Context(), classID, user.ID); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Enrollment canceled successfully"})
}
