package service_test

import (
	"context"
	"path/filepath"
	"testing"

	appErrors "github.com/glowcart/store-admin/internal/errors"
	"github.com/glowcart/store-admin/internal/models"
	service "github.com/glowcart/store-admin/internal/services"
	"github.com/glowcart/store-admin/internal/services/mocks"
	"github.com/glowcart/store-admin/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T, verifier service.CredentialVerifier) service.UserService {
	t.Helper()

	sessions := storage.NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	return service.NewUserService(verifier, sessions)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("empty credentials fail before the verifier runs", func(t *testing.T) {
		verifier := new(mocks.CredentialVerifier)
		svc := newUserService(t, verifier)

		_, err := svc.Login(ctx, &models.LoginRequest{Email: "owner@glowcart.io", Password: ""})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejected credentials surface as unauthorized", func(t *testing.T) {
		verifier := new(mocks.CredentialVerifier)
		verifier.On("Verify", mock.Anything, "owner@glowcart.io", "wrong").
			Return(service.ErrBadCredentials).Once()
		svc := newUserService(t, verifier)

		_, err := svc.Login(ctx, &models.LoginRequest{Email: "owner@glowcart.io", Password: "wrong"})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
		verifier.AssertExpectations(t)
	})

	t.Run("success persists the session record", func(t *testing.T) {
		verifier := new(mocks.CredentialVerifier)
		verifier.On("Verify", mock.Anything, "owner@glowcart.io", "secret").Return(nil).Once()
		svc := newUserService(t, verifier)

		user, err := svc.Login(ctx, &models.LoginRequest{Email: "owner@glowcart.io", Password: "secret"})
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "admin", user.Role)
		assert.Equal(t, "owner@glowcart.io", user.Email)

		current, err := svc.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user, current)
		verifier.AssertExpectations(t)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, service.StubVerifier{})

	_, err := svc.Login(ctx, &models.LoginRequest{Email: "owner@glowcart.io", Password: "anything"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentUser(ctx)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)

	// A second logout with no session is still fine.
	assert.NoError(t, svc.Logout(ctx))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, service.StubVerifier{})

	t.Run("fabricates an admin record and signs in", func(t *testing.T) {
		user, err := svc.Register(ctx, &models.RegisterRequest{
			Name:     "Beauty Store Owner",
			Email:    "owner@glowcart.io",
			Password: "anything",
		})
		require.NoError(t, err)

		assert.Equal(t, "Beauty Store Owner", user.Name)
		assert.Equal(t, "admin", user.Role)

		current, err := svc.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user, current)
	})

	t.Run("missing name is a validation failure", func(t *testing.T) {
		_, err := svc.Register(ctx, &models.RegisterRequest{
			Email:    "owner@glowcart.io",
			Password: "anything",
		})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(t, service.StubVerifier{})

	assert.NoError(t, svc.ResetPassword(ctx, "owner@glowcart.io"))

	err := svc.ResetPassword(ctx, "not-an-email")
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
}

func TestStaticVerifier(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := service.NewStaticVerifier(map[string][]byte{"owner@glowcart.io": hash})

	assert.NoError(t, verifier.Verify(ctx, "owner@glowcart.io", "secret"))
	assert.ErrorIs(t, verifier.Verify(ctx, "owner@glowcart.io", "wrong"), service.ErrBadCredentials)
	assert.ErrorIs(t, verifier.Verify(ctx, "stranger@glowcart.io", "secret"), service.ErrBadCredentials)

	// The service composes with it unchanged.
	svc := newUserService(t, verifier)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "owner@glowcart.io", Password: "secret"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Email: "owner@glowcart.io", Password: "wrong"})
	assert.Error(t, err)
}
