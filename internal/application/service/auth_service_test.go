package service_test

import (
	"testing"
	"time"

	"github.com/sangkips/tillpoint-api/internal/application/service"
	"github.com/sangkips/tillpoint-api/pkg/apperror"
	"github.com/sangkips/tillpoint-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	hash, err := service.HashPassword("hunter2")
	require.NoError(t, err)

	auth := service.NewAuthService("anna", hash, jwtManager)

	token, err := auth.Login("anna", "hunter2")
	require.NoError(t, err)

	claims, err := jwtManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "anna", claims.Cashier)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	hash, err := service.HashPassword("hunter2")
	require.NoError(t, err)

	auth := service.NewAuthService("anna", hash, jwtManager)

	_, err = auth.Login("anna", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = auth.Login("bob", "hunter2")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
