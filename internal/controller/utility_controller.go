package controller

import (
	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/pkg/serverutils"
	"ai-procurement-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IUtilityController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Echo(ctx *fiber.Ctx) error
	DbStatus(ctx *fiber.Ctx) error
}

type utilityController struct {
	db *gorm.DB
}

func NewUtilityController(db *gorm.DB) IUtilityController {
	return &utilityController{db: db}
}

func (c *utilityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/utility/v1")
	h.Get("", c.Root)
	h.Post("/echo", c.Echo)
	h.Get("/db-status", c.DbStatus)
}

func (c *utilityController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get root message", dto.MessageResponse{
		Content: "API V1 is running",
	}))
}

func (c *utilityController) Echo(ctx *fiber.Ctx) error {
	var req dto.MessageResponse
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success echo message", req))
}

// DbStatus runs a minimal head-style select so the probe stays cheap even on
// a large archive table.
func (c *utilityController) DbStatus(ctx *fiber.Ctx) error {
	if c.db == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Database client is not available")
	}

	if err := database.HealthProbe(ctx.Context(), c.db); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Could not connect to the database service")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check database status", dto.StatusResponse{
		Status:  "ok",
		Message: "Database connection is successful.",
	}))
}
