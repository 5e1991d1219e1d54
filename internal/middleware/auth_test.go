package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/owner"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// The middleware and token.Issuer.Verify must agree on every token.
func TestJWTProtectedAgreesWithVerify(t *testing.T) {
	issuer := token.NewIssuer(testSecret)
	app := fiber.New()
	app.Get("/me", JWTProtected(issuer), func(c *fiber.Ctx) error {
		id, err := owner.UserID(c)
		require.NoError(t, err)
		return c.JSON(fiber.Map{"id": id})
	})

	valid, err := issuer.Create(&models.User{ID: 3, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	sign := func(method jwt.SigningMethod, claims *token.Claims) string {
		signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return signed
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tokens := map[string]string{
		"valid":     valid,
		"no expiry": sign(jwt.SigningMethodHS256, &token.Claims{ID: 3}),
		"no id":     sign(jwt.SigningMethodHS256, &token.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}),
		"hs512":     sign(jwt.SigningMethodHS512, &token.Claims{ID: 3, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}),
		"garbage":   "abc.def.ghi",
	}

	for name, raw := range tokens {
		_, verifyErr := issuer.Verify(raw)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()

		if verifyErr == nil {
			assert.Equal(t, http.StatusOK, resp.StatusCode, name)
		} else {
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
		}
	}
	_, err = issuer.Verify(valid)
	assert.NoError(t, err)
}
