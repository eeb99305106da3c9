package controller

import (
	"smartmess-be/internal/dto"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService    service.IAuthService
	authMiddleware *serverutils.AuthMiddleware
}

func NewAuthController(authService service.IAuthService, authMiddleware *serverutils.AuthMiddleware) IAuthController {
	return &authController{
		authService:    authService,
		authMiddleware: authMiddleware,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("signup", c.Signup)
	h.Post("login", c.Login)
	h.Get("me", c.authMiddleware.RequireAuth, c.Me)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success signup", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	user := serverutils.CurrentUser(ctx)
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", dto.UserFromEntity(user)))
}
