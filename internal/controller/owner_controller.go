package controller

import (
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOwnerController interface {
	RegisterRoutes(r fiber.Router)
	DashboardStats(ctx *fiber.Ctx) error
}

type ownerController struct {
	ownerService   service.IOwnerService
	authMiddleware *serverutils.AuthMiddleware
}

func NewOwnerController(ownerService service.IOwnerService, authMiddleware *serverutils.AuthMiddleware) IOwnerController {
	return &ownerController{
		ownerService:   ownerService,
		authMiddleware: authMiddleware,
	}
}

func (c *ownerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/owner")
	h.Use(c.authMiddleware.RequireAuth)
	h.Get("dashboard-stats", c.DashboardStats)
}

func (c *ownerController) DashboardStats(ctx *fiber.Ctx) error {
	res, err := c.ownerService.DashboardStats(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}
