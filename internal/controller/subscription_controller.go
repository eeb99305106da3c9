package controller

import (
	"smartmess-be/internal/dto"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	CreateOrder(ctx *fiber.Ctx) error
	VerifyPayment(ctx *fiber.Ctx) error
	MySubscriptions(ctx *fiber.Ctx) error
	Pause(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	SkipMeal(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
	authMiddleware      *serverutils.AuthMiddleware
}

func NewSubscriptionController(subscriptionService service.ISubscriptionService, authMiddleware *serverutils.AuthMiddleware) ISubscriptionController {
	return &subscriptionController{
		subscriptionService: subscriptionService,
		authMiddleware:      authMiddleware,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription")
	h.Use(c.authMiddleware.RequireAuth)
	h.Post("create-order", c.CreateOrder)
	h.Post("verify-payment", c.VerifyPayment)
	h.Get("my-subscriptions", c.MySubscriptions)
	h.Put(":id/pause", c.Pause)
	h.Put(":id/cancel", c.Cancel)
	h.Post("skip-meal", c.SkipMeal)
}

func (c *subscriptionController) CreateOrder(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.CreateOrder(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create order", res))
}

func (c *subscriptionController) VerifyPayment(ctx *fiber.Ctx) error {
	var req dto.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.VerifyPaymentAndSubscribe(ctx.Context(), serverutils.CurrentUser(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create subscription", res))
}

func (c *subscriptionController) MySubscriptions(ctx *fiber.Ctx) error {
	res, err := c.subscriptionService.MySubscriptions(ctx.Context(), serverutils.CurrentUser(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list subscriptions", res))
}

func (c *subscriptionController) Pause(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid subscription id")
	}

	if err := c.subscriptionService.Pause(ctx.Context(), serverutils.CurrentUser(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success pause subscription", nil))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid subscription id")
	}

	if err := c.subscriptionService.Cancel(ctx.Context(), serverutils.CurrentUser(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel subscription", nil))
}

func (c *subscriptionController) SkipMeal(ctx *fiber.Ctx) error {
	var req dto.MealSkipRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.subscriptionService.SkipMeal(ctx.Context(), serverutils.CurrentUser(ctx), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record meal skip", nil))
}
