// FILE: internal/controller/vault_controller.go
package controller

import (
	"smepro-be/internal/dto"
	"smepro-be/internal/pkg/serverutils"
	"smepro-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type VaultController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type vaultController struct {
	vaultService service.IVaultService
}

func NewVaultController(vaultService service.IVaultService) VaultController {
	return &vaultController{
		vaultService: vaultService,
	}
}

func (c *vaultController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	vault := api.Group("/vault", jwtMiddleware)
	vault.Post("/items", c.SaveItem)
	vault.Get("/items", c.ListItems)
	vault.Delete("/items/:itemId", c.DeleteItem)
	vault.Get("/categories", c.ListCategories)
	vault.Post("/categories", c.CreateCategory)
	vault.Post("/synthesize", c.Synthesize)
	vault.Post("/drill-down", c.DrillDown)
}

func (c *vaultController) SaveItem(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.SaveVaultItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	item, err := c.vaultService.SaveItem(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Item saved", item))
}

// ListItems filters by optional category and substring search query params.
func (c *vaultController) ListItems(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	items, err := c.vaultService.ListItems(ctx.Context(), userId, ctx.Query("category"), ctx.Query("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Items retrieved", items))
}

func (c *vaultController) DeleteItem(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	itemId, err := uuid.Parse(ctx.Params("itemId"))
	if err != nil {
		return &dto.ValidationError{Message: "invalid item id"}
	}
	if err := c.vaultService.DeleteItem(ctx.Context(), userId, itemId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Item deleted", nil))
}

func (c *vaultController) ListCategories(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	categories, err := c.vaultService.ListCategories(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved", categories))
}

func (c *vaultController) CreateCategory(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req struct {
		Name string `json:"name" validate:"required,min=1,max=100"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	if err := c.vaultService.CreateCategory(ctx.Context(), userId, req.Name); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Category created", nil))
}

// Synthesize runs the cross-item analyzer over two or more vault items
// @Summary Synthesize vault items
// @Tags Vault
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} dto.SynthesisResponse
// @Router /api/vault/synthesize [post]
func (c *vaultController) Synthesize(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.SynthesisRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	result, err := c.vaultService.Synthesize(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Synthesis complete", result))
}

func (c *vaultController) DrillDown(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.DrillDownRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	result, err := c.vaultService.DrillDown(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Drill-down complete", result))
}
