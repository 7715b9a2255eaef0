// FILE: internal/controller/plan_controller.go
package controller

import (
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/internal/pkg/serverutils"
	"smepro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PlanController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type planController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) PlanController {
	return &planController{
		planService: planService,
	}
}

func (c *planController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	// Public pricing table
	api.Get("/plans", c.ListPlans)

	user := api.Group("/user", jwtMiddleware)
	user.Get("/plan", c.GetPlan)
	user.Put("/plan", c.ChangePlan)
	user.Get("/taxonomy/:level", c.TaxonomyOptions)
}

// ListPlans returns the static plan catalogue for the pricing modal
// @Summary List subscription plans
// @Tags Plans
// @Produce json
// @Success 200 {object} []dto.PlanCatalogEntryResponse
// @Router /api/plans [get]
func (c *planController) ListPlans(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", c.planService.ListPlans()))
}

func (c *planController) GetPlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	plan, err := c.planService.GetPlan(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan retrieved", plan))
}

func (c *planController) ChangePlan(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.ChangePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	plan, err := c.planService.ChangePlan(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", plan))
}

// TaxonomyOptions resolves the dependent dropdown values for one level.
// Prior selections arrive as query params (domain, sub_domain).
func (c *planController) TaxonomyOptions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	prior := entity.PersonaConfig{
		Domain:    ctx.Query("domain"),
		SubDomain: ctx.Query("sub_domain"),
	}
	options, err := c.planService.TaxonomyOptions(ctx.Context(), userId, ctx.Params("level"), prior)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Options retrieved", options))
}
