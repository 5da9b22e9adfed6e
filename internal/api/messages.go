package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"example.com/fitlife/internal/auth"
)

func (h *Handler) messages(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	switch r.Method {
	case http.MethodGet:
		messages, err := h.service.ListUserMessages(r.Context(), user.ID)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messages)
	case http.MethodPost:
		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}

		message, err := h.service.SendMessage(r.Context(), user.ID, req.ReceiverID, req.Content)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, message)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

// messageRead handles PUT /api/messages/{id}/read.
func (h *Handler) messageRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	if _, ok := auth.UserFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/messages/")
	if !strings.HasSuffix(rest, "/read") {
		writeError(w, http.StatusNotFound, "not_found", "unknown message route")
		return
	}

	id, err := strconv.Atoi(strings.TrimSuffix(rest, "/read"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid message id")
		return
	}

	if err := h.service.MarkMessageRead(r.Context(), id); err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Message marked as read"})
}
