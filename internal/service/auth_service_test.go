package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

const testJWTSecret = "test_jwt_secret"

func newTestAuthService() (AuthService, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewAuthService(repo, testJWTSecret, logger.New(logger.ERROR)), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "anita@example.com",
		Password: "secret123",
		FullName: "Anita Desai",
		City:     "Pune",
	})

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "anita@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be hashed")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	req := domain.RegisterRequest{Email: "anita@example.com", Password: "secret123", FullName: "Anita Desai"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "anita@example.com",
		Password: "secret123",
		FullName: "Anita Desai",
	})
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "anita@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(registered.ID), claims["user_id"])
	assert.Equal(t, false, claims["is_admin"])
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "anita@example.com",
		Password: "secret123",
		FullName: "Anita Desai",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "anita@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, _, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "anita@example.com",
		Password: "secret123",
		FullName: "Anita Desai",
	})
	require.NoError(t, err)

	user, err := svc.GetUser(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anita Desai", user.FullName)

	_, err = svc.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
