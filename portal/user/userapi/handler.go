package userapi

import (
	"github.com/TechnologicalJerry/job-portal-website/pkg/iam/auth"
	"github.com/TechnologicalJerry/job-portal-website/portal/user"
	"github.com/TechnologicalJerry/job-portal-website/portal/user/usersrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for account operations
type Handlers struct {
	service *usersrv.UserService
}

// NewHandlers creates a new user handlers instance
func NewHandlers(service *usersrv.UserService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Register creates a new account
// POST /api/users
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req user.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data":    created,
	})
}

// Login verifies credentials and issues a token pair
// POST /api/sessions
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    session,
	})
}

// Me returns the authenticated caller's account
// GET /api/users/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	account, err := h.service.GetUser(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    account,
	})
}

// RegisterRoutes registers all user routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Post("/api/users", handlers.Register)
	app.Post("/api/sessions", handlers.Login)

	app.Get("/api/users/me",
		authMiddleware.Authenticate(),
		handlers.Me,
	)
}
