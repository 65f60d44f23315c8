package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"feedboard/app/middleware"
	"feedboard/app/models"
	"feedboard/app/repositories"
	"feedboard/app/services"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, err error) {
	sendJSON(w, errorStatus(err), map[string]string{"error": err.Error()})
}

// errorStatus maps service/repository errors onto HTTP statuses. Conflicts
// (already liked, not liked, username taken) get 409 so clients can tell
// "already in that state" apart from real failures.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrAlreadyLiked),
		errors.Is(err, repositories.ErrNotLiked),
		errors.Is(err, repositories.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// requireUser fetches the authenticated user or answers 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middleware.UserFrom(r)
	if user == nil {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		return nil, false
	}
	return user, true
}
