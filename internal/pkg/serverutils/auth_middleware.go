package serverutils

import (
	"smartmess-be/internal/entity"
	"smartmess-be/internal/repository/specification"
	"smartmess-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// AuthMiddleware resolves the bearer token to a live user row on every
// request. A token whose user no longer exists is rejected the same way as a
// malformed one.
type AuthMiddleware struct {
	uowFactory unitofwork.RepositoryFactory
	secret     string
}

func NewAuthMiddleware(uowFactory unitofwork.RepositoryFactory, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		uowFactory: uowFactory,
		secret:     secret,
	}
}

func (m *AuthMiddleware) RequireAuth(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return NewUnauthorized("Missing token")
	}
	tokenStr := authHeader[7:]

	userId, _, err := ParseToken(tokenStr, m.secret)
	if err != nil {
		return NewUnauthorized("Invalid token")
	}

	uow := m.uowFactory.NewUnitOfWork(ctx.Context())
	user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByID{ID: userId})
	if err != nil {
		return NewInternal(err.Error())
	}
	if user == nil {
		return NewUnauthorized("User not found")
	}

	ctx.Locals(currentUserKey, user)
	return ctx.Next()
}

// CurrentUser returns the user resolved by RequireAuth, or nil on
// unauthenticated routes.
func CurrentUser(ctx *fiber.Ctx) *entity.User {
	user, _ := ctx.Locals(currentUserKey).(*entity.User)
	return user
}
