package controller

import (
	"smartmess-be/internal/dto"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListUsers(ctx *fiber.Ctx) error
	ListMesses(ctx *fiber.Ctx) error
	ListComplaints(ctx *fiber.Ctx) error
	VerifyMess(ctx *fiber.Ctx) error
	ResolveComplaint(ctx *fiber.Ctx) error
	SendWarning(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService   service.IAdminService
	authMiddleware *serverutils.AuthMiddleware
}

func NewAdminController(adminService service.IAdminService, authMiddleware *serverutils.AuthMiddleware) IAdminController {
	return &adminController{
		adminService:   adminService,
		authMiddleware: authMiddleware,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.authMiddleware.RequireAuth)
	h.Get("users", c.ListUsers)
	h.Get("messes", c.ListMesses)
	h.Get("complaints", c.ListComplaints)
	h.Put("verify-mess/:id", c.VerifyMess)
	h.Put("complaint/:id/resolve", c.ResolveComplaint)
	h.Post("send-warning/:ownerId", c.SendWarning)
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListUsers(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *adminController) ListMesses(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListMesses(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list messes", res))
}

func (c *adminController) ListComplaints(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListComplaints(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list complaints", res))
}

func (c *adminController) VerifyMess(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid mess id")
	}

	if err := c.adminService.VerifyMess(ctx.Context(), serverutils.CurrentUser(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success verify mess", nil))
}

func (c *adminController) ResolveComplaint(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid complaint id")
	}

	if err := c.adminService.ResolveComplaint(ctx.Context(), serverutils.CurrentUser(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve complaint", nil))
}

func (c *adminController) SendWarning(ctx *fiber.Ctx) error {
	ownerId, err := uuid.Parse(ctx.Params("ownerId"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid owner id")
	}

	var req dto.WarningRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.SendWarning(ctx.Context(), serverutils.CurrentUser(ctx), ownerId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send warning", nil))
}
