package controller

import (
	"smartmess-be/internal/dto"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	MyComplaints(ctx *fiber.Ctx) error
	MessComplaints(ctx *fiber.Ctx) error
}

type complaintController struct {
	complaintService service.IComplaintService
	authMiddleware   *serverutils.AuthMiddleware
}

func NewComplaintController(complaintService service.IComplaintService, authMiddleware *serverutils.AuthMiddleware) IComplaintController {
	return &complaintController{
		complaintService: complaintService,
		authMiddleware:   authMiddleware,
	}
}

func (c *complaintController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/complaint")
	h.Use(c.authMiddleware.RequireAuth)
	h.Post("", c.Create)
	h.Get("my-complaints", c.MyComplaints)
	h.Get("mess/:id", c.MessComplaints)
}

func (c *complaintController) Create(ctx *fiber.Ctx) error {
	var req dto.ComplaintCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.complaintService.File(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create complaint", res))
}

func (c *complaintController) MyComplaints(ctx *fiber.Ctx) error {
	res, err := c.complaintService.MyComplaints(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list my complaints", res))
}

func (c *complaintController) MessComplaints(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid mess id")
	}

	res, err := c.complaintService.MessComplaints(ctx.Context(), serverutils.CurrentUser(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list mess complaints", res))
}
