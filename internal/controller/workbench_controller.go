// FILE: internal/controller/workbench_controller.go
package controller

import (
	"smepro-be/internal/dto"
	"smepro-be/internal/pkg/serverutils"
	"smepro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type WorkbenchController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type workbenchController struct {
	workbenchService service.IWorkbenchService
}

func NewWorkbenchController(workbenchService service.IWorkbenchService) WorkbenchController {
	return &workbenchController{
		workbenchService: workbenchService,
	}
}

func (c *workbenchController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	workbench := api.Group("/workbench", jwtMiddleware)
	workbench.Post("/chat", c.Chat)
	workbench.Post("/complex-text", c.ComplexText)
	workbench.Post("/images/generate", c.GenerateImage)
	workbench.Post("/images/analyze", c.AnalyzeImage)
	workbench.Post("/images/edit", c.EditImage)
	workbench.Post("/images/animate", c.AnimateImage)
}

func (c *workbenchController) Chat(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.WorkbenchChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	result, err := c.workbenchService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Response generated", result))
}

func (c *workbenchController) ComplexText(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.ComplexTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	result, err := c.workbenchService.ComplexText(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Text generated", result))
}

// GenerateImage produces an image asset from a text prompt
// @Summary Generate an image
// @Tags Workbench
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} dto.AssetResponse
// @Router /api/workbench/images/generate [post]
func (c *workbenchController) GenerateImage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	asset, err := c.workbenchService.GenerateImage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Image generated", asset))
}

func (c *workbenchController) AnalyzeImage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.AnalyzeImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	result, err := c.workbenchService.AnalyzeImage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Image analyzed", result))
}

func (c *workbenchController) EditImage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.EditImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	asset, err := c.workbenchService.EditImage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Image edited", asset))
}

// AnimateImage is a long call; the collaborator polls the video operation
// until it resolves.
func (c *workbenchController) AnimateImage(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.AnimateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	asset, err := c.workbenchService.AnimateImage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Video generated", asset))
}
