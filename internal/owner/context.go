package owner

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is where the JWT middleware stores the verified token.
const ContextKey = "user"

// UserID extracts the authenticated user's id from the verified token in context.
func UserID(c *fiber.Ctx) (uint, error) {
	claims, err := Claims(c)
	if err != nil {
		return 0, err
	}
	return claims.ID, nil
}

func Claims(c *fiber.Ctx) (*token.Claims, error) {
	tok, ok := c.Locals(ContextKey).(*jwt.Token)
	if !ok || tok == nil {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := tok.Claims.(*token.Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if err := claims.Check(); err != nil {
		return nil, err
	}
	return claims, nil
}
