package controller

import (
	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/pkg/serverutils"
	"cofoundr-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDiscoveryController interface {
	RegisterRoutes(r fiber.Router)
	Feed(ctx *fiber.Ctx) error
	Pass(ctx *fiber.Ctx) error
	RespondToSection(ctx *fiber.Ctx) error
}

type discoveryController struct {
	discoveryService service.IDiscoveryService
}

func NewDiscoveryController(discoveryService service.IDiscoveryService) IDiscoveryController {
	return &discoveryController{
		discoveryService: discoveryService,
	}
}

func (c *discoveryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/discovery/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/feed", c.Feed)
	h.Post("/pass", c.Pass)
	h.Post("/respond", c.RespondToSection)
}

func (c *discoveryController) Feed(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 20)

	res, err := c.discoveryService.Feed(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetch feed", res))
}

func (c *discoveryController) Pass(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.PassRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.discoveryService.Pass(ctx.Context(), userId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success pass profile", nil))
}

func (c *discoveryController) RespondToSection(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SectionResponseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.discoveryService.RespondToSection(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save response", res))
}
