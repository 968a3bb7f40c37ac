package controller

import (
	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/pkg/serverutils"
	"ai-procurement-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPriceController interface {
	RegisterRoutes(r fiber.Router)
	Estimate(ctx *fiber.Ctx) error
}

type priceController struct {
	service service.IPriceService
}

func NewPriceController(service service.IPriceService) IPriceController {
	return &priceController{service: service}
}

func (c *priceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/price/v1")
	h.Post("/estimate", c.Estimate)
}

func (c *priceController) Estimate(ctx *fiber.Ctx) error {
	var req dto.PurchaseRequestItem
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Estimate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success estimate item price", res))
}
