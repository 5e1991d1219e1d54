package middleware

import (
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/owner"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

const unauthorizedMessage = "Unauthorized: invalid or expired token"

// JWTProtected verifies the bearer token and stores it under owner.ContextKey.
// Claims go through token.Claims.Check, the same rules token.Issuer.Verify applies.
func JWTProtected(issuer *token.Issuer) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: token.Algorithm,
			Key:    issuer.Secret(),
		},
		Claims:     &token.Claims{},
		ContextKey: owner.ContextKey,
		SuccessHandler: func(c *fiber.Ctx) error {
			if _, err := owner.Claims(c); err != nil {
				return unauthorized(c)
			}
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: unauthorizedMessage,
	})
}
