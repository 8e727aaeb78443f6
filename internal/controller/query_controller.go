package controller

import (
	"legal-advisor-be/internal/dto"
	"legal-advisor-be/internal/pkg/serverutils"
	"legal-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	ProcessQuery(ctx *fiber.Ctx) error
}

type queryController struct {
	queryService service.IQueryService
}

func NewQueryController(queryService service.IQueryService) IQueryController {
	return &queryController{
		queryService: queryService,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/legal/v1")
	h.Post("process-query", c.ProcessQuery)
}

func (c *queryController) ProcessQuery(ctx *fiber.Ctx) error {
	var req dto.ProcessQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.queryService.ProcessQuery(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
