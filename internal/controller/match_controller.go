package controller

import (
	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/pkg/serverutils"
	"cofoundr-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UpdateDesignation(ctx *fiber.Ctx) error
}

type matchController struct {
	matchService service.IMatchService
}

func NewMatchController(matchService service.IMatchService) IMatchController {
	return &matchController{
		matchService: matchService,
	}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/match/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Put(":id/designation", c.UpdateDesignation)
}

func (c *matchController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.matchService.List(ctx.Context(), userId, ctx.Query("designation"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list matches", res))
}

func (c *matchController) UpdateDesignation(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateDesignationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.matchService.UpdateDesignation(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update designation", res))
}
