package controller

import (
	"strconv"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/pkg/serverutils"
	"cofoundr-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICollabController interface {
	RegisterRoutes(r fiber.Router)
	ListMethods(ctx *fiber.Ctx) error
	ShowMethod(ctx *fiber.Ctx) error
	CreateMethod(ctx *fiber.Ctx) error
	ListActive(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Propose(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	OpenStep(ctx *fiber.Ctx) error
	ToggleCriterion(ctx *fiber.Ctx) error
	SaveStep(ctx *fiber.Ctx) error
	DiscardStep(ctx *fiber.Ctx) error
}

type collabController struct {
	methodService service.IMethodService
	collabService service.ICollabService
}

func NewCollabController(methodService service.IMethodService, collabService service.ICollabService) ICollabController {
	return &collabController{
		methodService: methodService,
		collabService: collabService,
	}
}

func (c *collabController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/collab/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/methods", c.ListMethods)
	h.Post("/methods", c.CreateMethod)
	h.Get("/methods/:id", c.ShowMethod)

	h.Get("", c.ListActive)
	h.Post("", c.Propose)
	h.Get(":id", c.Show)
	h.Post(":id/accept", c.Accept)
	h.Post(":id/cancel", c.Cancel)
	h.Post(":id/steps/:stepIndex/open", c.OpenStep)

	// Step editor routes operate on the caller's open session.
	h.Post("/step/toggle", c.ToggleCriterion)
	h.Post("/step/save", c.SaveStep)
	h.Post("/step/discard", c.DiscardStep)
}

func (c *collabController) ListMethods(ctx *fiber.Ctx) error {
	res, err := c.methodService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list methods", res))
}

func (c *collabController) ShowMethod(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid method id")
	}

	res, err := c.methodService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show method", res))
}

func (c *collabController) CreateMethod(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateMethodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.methodService.CreateCustom(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create method", res))
}

func (c *collabController) ListActive(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.collabService.ListActive(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list collaborations", res))
}

func (c *collabController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.collabService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show collaboration", res))
}

func (c *collabController) Propose(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ProposeCollabRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.collabService.Propose(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success propose collaboration", res))
}

func (c *collabController) Accept(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.collabService.Accept(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success accept collaboration", nil))
}

func (c *collabController) Cancel(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.collabService.Cancel(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success cancel collaboration", nil))
}

func (c *collabController) OpenStep(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, _ := uuid.Parse(ctx.Params("id"))
	stepIndex, err := strconv.Atoi(ctx.Params("stepIndex"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid step index")
	}

	req := dto.OpenStepRequest{CollabId: id, StepIndex: stepIndex}

	res, err := c.collabService.OpenStep(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success open step", res))
}

func (c *collabController) ToggleCriterion(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ToggleCriterionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.collabService.ToggleCriterion(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle criterion", res))
}

func (c *collabController) SaveStep(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.collabService.SaveStep(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save step", res))
}

func (c *collabController) DiscardStep(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.collabService.DiscardStep(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success discard step", nil))
}
