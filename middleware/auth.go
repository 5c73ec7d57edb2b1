package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
	"github.com/TheQuantumSilver/ReceiptVakaGen/helper"
)

// AuthRequired rejects requests without a valid bearer token. A missing
// or malformed header is 401; an expired or otherwise invalid token is
// 403. On success the admin name claim is exposed via Locals.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := strings.TrimSpace(c.Get("Authorization"))
		if bearer == "" || len(bearer) < 7 || !strings.EqualFold(bearer[:7], "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Message: "Access Denied: No token provided or token format is incorrect.",
			})
		}

		token := strings.TrimSpace(bearer[7:])
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Message: "Access Denied: Token missing after Bearer.",
			})
		}

		claims, err := helper.ValidateToken(token, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
					Message: "Access Denied: Token expired.",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
				Message: "Access Denied: Invalid token.",
			})
		}

		c.Locals("adminName", claims.AdminName)
		c.Locals("claims", claims)

		return c.Next()
	}
}
