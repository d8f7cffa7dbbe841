package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/models"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/pkg/apperrors"
	"github.com/dayotunde25/bsf/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	validRequest := func() *dto.RegisterRequest {
		return &dto.RegisterRequest{
			Email:     "new.member@bsffpi.org",
			Password:  "secret-password",
			FirstName: "Grace",
			LastName:  "Adeyemi",
		}
	}

	t.Run("creates account with alumni role by default", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		service := NewAuthService(userRepo, newTestJWTService())

		resp, err := service.Register(ctx, validRequest())
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.Equal(t, "Bearer", resp.Token.TokenType)
		assert.Equal(t, int(time.Hour.Seconds()), resp.Token.ExpiresIn)
		assert.Equal(t, "new.member@bsffpi.org", resp.User.Email)
		assert.Equal(t, string(models.RoleAlumni), resp.User.Role)

		stored, err := userRepo.GetByEmail(ctx, "new.member@bsffpi.org")
		require.NoError(t, err)
		assert.NotEqual(t, "secret-password", stored.Password, "password must be stored hashed")
	})

	t.Run("normalizes email casing and whitespace", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		service := NewAuthService(userRepo, newTestJWTService())

		req := validRequest()
		req.Email = "  New.Member@BSFFPI.org  "
		resp, err := service.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "new.member@bsffpi.org", resp.User.Email)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), newTestJWTService())

		req := validRequest()
		req.Email = "not-an-email"
		_, err := service.Register(ctx, req)
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})

	t.Run("rejects short password", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(), newTestJWTService())

		req := validRequest()
		req.Password = "short"
		_, err := service.Register(ctx, req)
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		service := NewAuthService(userRepo, newTestJWTService())

		_, err := service.Register(ctx, validRequest())
		require.NoError(t, err)

		_, err = service.Register(ctx, validRequest())
		assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	member := testUser(1, models.RoleAlumni)
	member.Email = "member@bsffpi.org"
	member.Password = hashed

	t.Run("returns tokens on valid credentials", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(member), newTestJWTService())

		resp, err := service.Login(ctx, "member@bsffpi.org", "correct-password")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotEmpty(t, resp.Token.RefreshToken)
		assert.Equal(t, int64(1), resp.User.ID)
	})

	t.Run("accepts differently cased email", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(member), newTestJWTService())

		_, err := service.Login(ctx, "MEMBER@bsffpi.org", "correct-password")
		require.NoError(t, err)
	})

	t.Run("unknown email yields the same error as a bad password", func(t *testing.T) {
		service := NewAuthService(newFakeUserRepo(member), newTestJWTService())

		_, unknownErr := service.Login(ctx, "nobody@bsffpi.org", "correct-password")
		_, badPassErr := service.Login(ctx, "member@bsffpi.org", "wrong-password")

		assert.True(t, errors.Is(unknownErr, apperrors.ErrInvalidCredentials))
		assert.True(t, errors.Is(badPassErr, apperrors.ErrInvalidCredentials))
		assert.Equal(t, unknownErr.Error(), badPassErr.Error())
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	service := NewAuthService(newFakeUserRepo(testUser(7, models.RoleMentor)), newTestJWTService())

	user, err := service.GetCurrentUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMentor, user.Role)

	_, err = service.GetCurrentUser(ctx, 404)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}
