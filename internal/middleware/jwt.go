package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"estatehub/internal/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTMiddleware validates the bearer token and places the caller principal
// (identity + role) on the request context. Tokens without a recognized role
// are rejected here so the services only ever see admin or seller callers.
func JWTMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format")
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid claims")
			}

			identity, ok := claims["sub"].(string)
			if !ok || identity == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing subject in token")
			}

			roleClaim, ok := claims["role"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing role in token")
			}

			var role common.Role
			switch roleClaim {
			case string(common.RoleAdmin):
				role = common.RoleAdmin
			case string(common.RoleSeller):
				role = common.RoleSeller
			default:
				return echo.NewHTTPError(http.StatusForbidden, "Unrecognized role")
			}

			ctx := common.WithPrincipal(c.Request().Context(), common.Principal{
				Identity: identity,
				Role:     role,
			})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
