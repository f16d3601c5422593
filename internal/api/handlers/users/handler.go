package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdeyev/BusPark-BookingService/internal/api/handlers"
	"github.com/avdeyev/BusPark-BookingService/internal/api/middleware"
	"github.com/avdeyev/BusPark-BookingService/internal/domain"
	userService "github.com/avdeyev/BusPark-BookingService/internal/service/users"
	"github.com/avdeyev/BusPark-BookingService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "пользователь не найден"
	msgDuplicateEmail     = "email уже зарегистрирован"
	msgInvalidCredentials = "неверный email или пароль"
	msgInvalidRefresh     = "недействительный refresh-токен"
	msgInvalidInput       = "некорректные данные пользователя"
	msgMissingUserID      = "требуется аутентификация"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register POST /api/v1/users/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users/register", err)
		return
	}

	h.logger.Info("POST /users/register - User registered: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Login POST /api/v1/users/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users/login", err)
		return
	}

	h.logger.Info("POST /users/login - User logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Refresh POST /api/v1/users/refresh-token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/refresh-token - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Refresh(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users/refresh-token", err)
		return
	}

	h.logger.Info("POST /users/refresh-token - Tokens rotated: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/users/{userId}
// Пользователь видит только свой профиль, админ - любой
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "GET /users/{id}")
	if !ok {
		return
	}
	if !h.checkSelfOrAdmin(w, r, userID, "GET /users/{id}") {
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		h.respondError(w, "GET /users/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/users?role=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var role *string
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		role = &roleStr
	}

	result, err := h.service.List(r.Context(), role)
	if err != nil {
		h.respondError(w, "GET /users", err)
		return
	}

	h.logger.Info("GET /users - Retrieved %d users", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/users/{userId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "PUT /users/{id}")
	if !ok {
		return
	}
	if !h.checkSelfOrAdmin(w, r, userID, "PUT /users/{id}") {
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		h.respondError(w, "PUT /users/{id}", err)
		return
	}

	h.logger.Info("PUT /users/{id} - User updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/users/{userId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "DELETE /users/{id}")
	if !ok {
		return
	}
	if !h.checkSelfOrAdmin(w, r, userID, "DELETE /users/{id}") {
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		h.respondError(w, "DELETE /users/{id}", err)
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// Вспомогательные методы

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid user ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}
	return userID, true
}

func (h *Handler) checkSelfOrAdmin(w http.ResponseWriter, r *http.Request, userID int64, op string) bool {
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID in context", op)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return false
	}

	role, _ := middleware.GetRole(r.Context())
	if authUserID != userID && role != string(domain.RoleAdmin) {
		h.logger.Warn("%s - Access denied: user_id=%d, requested=%d", op, authUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, userService.ErrUserNotFound):
		h.logger.Warn("%s - User not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, userService.ErrDuplicateEmail):
		h.logger.Warn("%s - Duplicate email", op)
		handlers.RespondBadRequest(w, msgDuplicateEmail)

	case errors.Is(err, userService.ErrInvalidCredentials):
		h.logger.Warn("%s - Invalid credentials", op)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)

	case errors.Is(err, userService.ErrInvalidRefreshToken):
		h.logger.Warn("%s - Invalid refresh token", op)
		handlers.RespondUnauthorized(w, msgInvalidRefresh)

	case errors.Is(err, userService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
