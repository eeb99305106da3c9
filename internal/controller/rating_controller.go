package controller

import (
	"smartmess-be/internal/dto"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRatingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	MessRatings(ctx *fiber.Ctx) error
}

type ratingController struct {
	ratingService  service.IRatingService
	authMiddleware *serverutils.AuthMiddleware
}

func NewRatingController(ratingService service.IRatingService, authMiddleware *serverutils.AuthMiddleware) IRatingController {
	return &ratingController{
		ratingService:  ratingService,
		authMiddleware: authMiddleware,
	}
}

func (c *ratingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rating")
	h.Post("", c.authMiddleware.RequireAuth, c.Create)
	h.Get("mess/:id", c.MessRatings)
}

func (c *ratingController) Create(ctx *fiber.Ctx) error {
	var req dto.RatingCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ratingService.Rate(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create rating", res))
}

func (c *ratingController) MessRatings(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid mess id")
	}

	res, err := c.ratingService.MessRatings(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list ratings", res))
}
