// FILE: internal/controller/chat_controller.go
package controller

import (
	"smepro-be/internal/dto"
	"smepro-be/internal/pkg/serverutils"
	"smepro-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) ChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	sessions := api.Group("/sessions", jwtMiddleware)
	sessions.Post("/", c.CreateSession)
	sessions.Get("/", c.ListSessions)
	sessions.Get("/:sessionId", c.GetSession)
	sessions.Delete("/:sessionId", c.DeleteSession)

	sessions.Post("/:sessionId/messages", c.SendMessage)
	sessions.Get("/:sessionId/suggestions", c.GetSuggestions)
	sessions.Post("/:sessionId/personas", c.AddPersonas)
	sessions.Post("/:sessionId/workshop", c.StartWorkshop)
	sessions.Post("/:sessionId/builder", c.StartBuilder)
	sessions.Put("/:sessionId/focus", c.SetFocus)
	sessions.Get("/:sessionId/capabilities/suggestions", c.SuggestCapabilities)
	sessions.Put("/:sessionId/capabilities/static", c.ToggleStaticCapability)
	sessions.Post("/:sessionId/capabilities/propose", c.ProposeCapability)
	sessions.Post("/:sessionId/capabilities/confirm", c.ConfirmCapability)
	sessions.Delete("/:sessionId/capabilities/:capabilityId", c.DisableCapability)
	sessions.Post("/:sessionId/step-action", c.StepAction)
	sessions.Post("/:sessionId/step-actions/dynamic", c.DynamicStepActions)
	sessions.Post("/:sessionId/insight", c.Insight)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	session, err := c.chatService.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session created", session))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	sessions, err := c.chatService.ListSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sessions retrieved", sessions))
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	session, err := c.chatService.GetSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session retrieved", session))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	if err := c.chatService.DeleteSession(ctx.Context(), userId, sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}

// SendMessage runs one exchange: persist the user turn, collect the model
// reply, return both with any refreshed suggestions
// @Summary Send a chat message
// @Tags Chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} dto.ExchangeResponse
// @Router /api/sessions/{sessionId}/messages [post]
func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	exchange, err := c.chatService.SendMessage(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message sent", exchange))
}

func (c *chatController) GetSuggestions(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	suggestions, err := c.chatService.GetSuggestions(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Suggestions retrieved", suggestions))
}

func (c *chatController) AddPersonas(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.AddPersonasRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	session, err := c.chatService.AddPersonas(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Personas added", session))
}

func (c *chatController) StartWorkshop(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.StartWorkshopRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	session, err := c.chatService.StartWorkshop(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Workshop started", session))
}

func (c *chatController) StartBuilder(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.ContinueInBuilderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	session, err := c.chatService.StartBuilder(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Builder mode started", session))
}

func (c *chatController) SetFocus(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.SetFocusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	session, err := c.chatService.SetFocus(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Focus updated", session))
}

func (c *chatController) SuggestCapabilities(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	suggestions, err := c.chatService.SuggestCapabilities(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Capability suggestions retrieved", suggestions))
}

func (c *chatController) ToggleStaticCapability(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.ToggleStaticCapabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	session, err := c.chatService.ToggleStaticCapability(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Capability updated", session))
}

func (c *chatController) ProposeCapability(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.ProposeCapabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	proposal, err := c.chatService.ProposeCapability(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Capability proposed", proposal))
}

func (c *chatController) ConfirmCapability(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.ConfirmCapabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	session, err := c.chatService.ConfirmCapability(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Capability enabled", session))
}

func (c *chatController) DisableCapability(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	session, err := c.chatService.DisableCapability(ctx.Context(), userId, sessionId, ctx.Params("capabilityId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Capability disabled", session))
}

func (c *chatController) StepAction(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.StepActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	message, err := c.chatService.StepAction(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Action executed", message))
}

func (c *chatController) DynamicStepActions(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.DynamicStepActionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	actions, err := c.chatService.DynamicStepActions(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Actions generated", actions))
}

func (c *chatController) Insight(ctx *fiber.Ctx) error {
	userId, sessionId, err := sessionScope(ctx)
	if err != nil {
		return err
	}
	var req dto.InsightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	message, err := c.chatService.Insight(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Insight generated", message))
}

// sessionScope extracts the authenticated user and the session path param.
func sessionScope(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userId, err := currentUserId(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, &dto.ValidationError{Message: "invalid session id"}
	}
	return userId, sessionId, nil
}
