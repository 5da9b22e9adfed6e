package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"example.com/fitlife/internal/auth"
	"example.com/fitlife/internal/domain"
)

func (h *Handler) workouts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listWorkouts(w, r)
	case http.MethodPost:
		h.createWorkout(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	var equipment []string
	if raw := r.URL.Query().Get("equipment"); raw != "" {
		for _, item := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				equipment = append(equipment, trimmed)
			}
		}
	}

	workouts, err := h.service.ListWorkouts(r.Context(), r.URL.Query().Get("type"), equipment)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	workout, err := h.service.CreateWorkout(r.Context(), domain.Workout{
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		EquipmentNeeded: req.EquipmentNeeded,
		Exercises:       req.Exercises,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

func (h *Handler) workoutByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/workouts/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid workout id")
		return
	}

	workout, err := h.service.GetWorkout(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (h *Handler) meals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listMeals(w, r)
	case http.MethodPost:
		h.createMeal(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.service.ListMeals(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

func (h *Handler) createMeal(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}

	var req CreateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	meal, err := h.service.CreateMeal(r.Context(), domain.Meal{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		Image:       req.Image,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}

func (h *Handler) mealByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/meals/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	meal, err := h.service.GetMeal(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meal)
}
