package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/token"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	return NewAuthService(db, token.NewIssuer(testSecret), &config.Config{}), db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func ptr[T any](v T) *T {
	return &v
}

func bmiRequest(height, weight float64) *dto.BmiRequest {
	return &dto.BmiRequest{
		Name:   "Ada",
		Email:  "ada@example.com",
		Height: &height,
		Weight: &weight,
	}
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, field, verr.Field)
}
