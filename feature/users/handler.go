package users

import (
	"errors"

	"partflow-sync/core/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler handles HTTP requests for users.
type Handler struct {
	service  *Service
	token    string
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler. token is handed to clients on login.
func NewHandler(service *Service, token string, logger *zap.Logger) *Handler {
	return &Handler{service: service, token: token, validate: validator.New(), logger: logger}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/register", h.HandleRegister)
	app.Post("/login", h.HandleLogin)
}

// HandleRegister creates a rep account.
// @Summary Register User
// @Description Creates a user with the rep role.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New user"
// @Success 200 {object} map[string]interface{} "Registered"
// @Failure 400 {object} map[string]interface{} "Missing fields or username taken"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil || h.validate.Struct(req) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Username and password required",
		})
	}

	if _, err := h.service.Register(c.UserContext(), req.Username, req.Password, req.FullName, RoleRep); err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Username already exists",
			})
		case errors.Is(err, ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Username and password required",
			})
		}
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
	})
}

// HandleLogin checks a username and password.
// @Summary Login
// @Description Returns the user and the bridge token when the credentials match.
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "User and token"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req LoginRequest
	_ = c.BodyParser(&req)

	u, err := h.service.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			l.Error("Login failed", zap.Error(err))
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":        u.ID,
			"username":  u.Username,
			"full_name": u.FullName,
			"role":      u.Role,
		},
		"token": h.token,
	})
}
