package controller

import (
	"smartmess-be/internal/dto"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	MyMesses(ctx *fiber.Ctx) error
	UpdateMenu(ctx *fiber.Ctx) error
}

type messController struct {
	messService    service.IMessService
	authMiddleware *serverutils.AuthMiddleware
}

func NewMessController(messService service.IMessService, authMiddleware *serverutils.AuthMiddleware) IMessController {
	return &messController{
		messService:    messService,
		authMiddleware: authMiddleware,
	}
}

func (c *messController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mess")
	// Fixed paths must register before the :id wildcard.
	h.Get("search", c.Search)
	h.Get("owner/my-messes", c.authMiddleware.RequireAuth, c.MyMesses)
	h.Post("", c.authMiddleware.RequireAuth, c.Create)
	h.Get(":id", c.Show)
	h.Put(":id/menu", c.authMiddleware.RequireAuth, c.UpdateMenu)
}

func (c *messController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMessRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messService.Create(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create mess", res))
}

func (c *messController) Search(ctx *fiber.Ctx) error {
	city := ctx.Query("city")
	state := ctx.Query("state")

	res, err := c.messService.Search(ctx.Context(), city, state)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search messes", res))
}

func (c *messController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid mess id")
	}

	res, err := c.messService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show mess", res))
}

func (c *messController) MyMesses(ctx *fiber.Ctx) error {
	res, err := c.messService.MyMesses(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list my messes", res))
}

func (c *messController) UpdateMenu(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid mess id")
	}

	var req dto.MenuUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.messService.UpdateMenu(ctx.Context(), serverutils.CurrentUser(ctx), id, req.Menu); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update menu", nil))
}
