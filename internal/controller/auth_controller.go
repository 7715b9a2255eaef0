// FILE: internal/controller/auth_controller.go
package controller

import (
	"smepro-be/internal/dto"
	"smepro-be/internal/pkg/serverutils"
	"smepro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) AuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	auth := api.Group("/auth")
	auth.Post("/register", c.Register)
	auth.Post("/login", c.Login)
}

// Register creates an account with a trialing solo subscription
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Router /api/auth/register [post]
func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	resp, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Registered", resp))
}

// Login exchanges credentials for a JWT
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Router /api/auth/login [post]
func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	resp, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logged in", resp))
}
