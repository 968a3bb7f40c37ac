package controller

import (
	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/pkg/serverutils"
	"ai-procurement-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Send)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.service.Interact(ctx.Context(), req.SessionId, req.UserMessage)
	if err != nil {
		// The middleware renders this as the uniform internal error; oracle
		// failures never leak transport detail to the client.
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process chat turn", dto.ChatResponse{
		SessionId:     req.SessionId,
		ModelResponse: result,
	}))
}
