package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/piotrekk1688/shop-api/internal/service/token"
)

// AdminOnly gates mutating routes: the caller must present a valid access
// token with the admin claim set, either as the accessToken cookie issued
// at login or as an Authorization bearer header. Everyone else gets 403.
func AdminOnly(svc *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Access denied"})
			}

			claims, err := svc.ParseAccessToken(raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Access denied"})
			}

			admin, _ := claims["admin"].(bool)
			if !admin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Access denied"})
			}

			if email, ok := claims["sub"].(string); ok {
				c.Set("userEmail", email)
			}
			c.Set("isAdmin", true)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
