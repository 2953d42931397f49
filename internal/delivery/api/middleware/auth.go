package middleware

import (
	"strings"

	deliverycontext "vitrine/internal/delivery/context"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates operators by their access token.
type AuthMiddleware struct {
	tokens service.TokenService
}

func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects the request unless it carries a valid bearer access token,
// and binds the operator id to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("missing bearer token")
		}

		claims, err := m.tokens.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil || claims.UserID == uuid.Nil {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
		}

		req := c.Request()
		ctx := deliverycontext.WithUserID(req.Context(), claims.UserID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
