package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/models"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/utils"
)

// BusinessStatusResponse is the body of PATCH /api/users/{id}
type BusinessStatusResponse struct {
	Message    string `json:"message"`
	IsBusiness bool   `json:"isBusiness"`
}

// UserHandler handles user-related routes
type UserHandler struct {
	authService AuthServiceInterface
	userService UserServiceInterface
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authService AuthServiceInterface, userService UserServiceInterface) *UserHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// Register handles user registration
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	// Decode and validate the request body
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Register the user
	if _, err := h.authService.RegisterUser(r.Context(), &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Message(w, constants.StatusCreated, constants.MsgUserCreated)
}

// Login handles user authentication. The payload is the signed token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	token, err := h.authService.AuthenticateUser(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, token)
}

// ListUsers returns every user to an admin
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	users, err := h.userService.ListUsers(r.Context(), principal)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, users)
}

// UpdateUser replaces the profile of the user in the path
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	// Decode and validate the request body
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), principal, chi.URLParam(r, constants.ParamID), &reg)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user)
}

// ToggleBusiness flips the business flag of the user in the path
func (h *UserHandler) ToggleBusiness(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	isBusiness, err := h.userService.ToggleBusiness(r.Context(), principal, chi.URLParam(r, constants.ParamID))
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, BusinessStatusResponse{
		Message:    constants.MsgBusinessStatusChanged,
		IsBusiness: isBusiness,
	})
}

// DeleteUser removes the user in the path
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), principal, chi.URLParam(r, constants.ParamID)); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Message(w, constants.StatusOK, constants.MsgUserDeleted)
}
