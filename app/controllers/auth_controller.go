package controllers

import (
	"encoding/json"
	"net/http"

	"feedboard/app/services"
)

// AuthController handles registration and login
type AuthController struct {
	userService *services.UserService
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles account creation
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	user, err := ac.userService.Register(body.Username, body.Password)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, services.UserView{ID: user.ID, Username: user.Username})
}

// Login checks credentials and returns the account info
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	user, err := ac.userService.Login(body.Username, body.Password)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, services.UserView{ID: user.ID, Username: user.Username})
}

// Me returns the authenticated user
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	sendJSON(w, http.StatusOK, services.UserView{ID: user.ID, Username: user.Username})
}
