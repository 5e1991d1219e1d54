package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &services.ValidationError{Field: "height", Message: "height out of range"}, http.StatusBadRequest, "height out of range"},
		{"wrapped validation", fmt.Errorf("create: %w", &services.ValidationError{Message: "bad"}), http.StatusBadRequest, "bad"},
		{"engine input", bmi.ErrInvalidInput, http.StatusBadRequest, bmi.ErrInvalidInput.Error()},
		{"conflict", services.ErrEmailTaken, http.StatusConflict, services.ErrEmailTaken.Error()},
		{"credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"token", token.ErrInvalidToken, http.StatusUnauthorized, token.ErrInvalidToken.Error()},
		{"record", services.ErrRecordNotFound, http.StatusNotFound, services.ErrRecordNotFound.Error()},
		{"user", services.ErrUserNotFound, http.StatusNotFound, services.ErrUserNotFound.Error()},
		{"internal", errors.New("database is locked"), http.StatusInternalServerError, internalErrorMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tc.err, "test")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.True(t, body.Error)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestPathID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	for path, want := range map[string]int{
		"/42":  http.StatusOK,
		"/0":   http.StatusBadRequest,
		"/-1":  http.StatusBadRequest,
		"/abc": http.StatusBadRequest,
		"/1.5": http.StatusBadRequest,
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
