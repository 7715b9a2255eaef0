// FILE: internal/controller/user_controller.go
package controller

import (
	"smepro-be/internal/dto"
	"smepro-be/internal/pkg/serverutils"
	"smepro-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) UserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	user := api.Group("/user", jwtMiddleware)
	user.Get("/profile", c.GetProfile)
	user.Put("/profile", c.UpdateProfile)
	user.Get("/usage-status", c.GetUsageStatus)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	profile, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved", profile))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	profile, err := c.userService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", profile))
}

// GetUsageStatus returns per-dimension quota usage against the current plan
// @Summary Get user usage status
// @Tags User
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UsageStatusResponse
// @Router /api/user/usage-status [get]
func (c *userController) GetUsageStatus(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	status, err := c.userService.GetUsageStatus(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage status retrieved", status))
}

// currentUserId reads the authenticated user id set by the JWT middleware.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw := ctx.Locals("user_id")
	if raw == nil {
		return uuid.Nil, &dto.UnauthorizedError{Message: "missing authentication"}
	}
	userId, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, &dto.UnauthorizedError{Message: "invalid user id in token"}
	}
	return userId, nil
}
