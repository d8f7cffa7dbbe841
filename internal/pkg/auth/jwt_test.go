package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayotunde25/bsf/internal/app/models"
)

func newService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "bsf-alumni.app",
	})
}

func sampleUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "member@bsffpi.org",
		Role:  models.RoleAlumni,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newService(time.Hour)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := service.GenerateTokenPair(sampleUser())
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := service.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "member@bsffpi.org", claims.Email)
	assert.Equal(t, "ALUMNI", claims.Role)
	assert.Equal(t, "bsf-alumni.app", claims.Issuer)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	service := newService(-time.Minute)

	accessToken, _, _, _, err := service.GenerateTokenPair(sampleUser())
	require.NoError(t, err)

	_, err = service.ValidateToken(accessToken)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service := newService(time.Hour)
	accessToken, _, _, _, err := service.GenerateTokenPair(sampleUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "a-different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "bsf-alumni.app",
	})
	_, err = other.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestValidateAndExtractClaims(t *testing.T) {
	service := newService(time.Hour)

	t.Run("empty token", func(t *testing.T) {
		_, err := service.ValidateAndExtractClaims("")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateAndExtractClaims("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("valid token", func(t *testing.T) {
		accessToken, _, _, _, err := service.GenerateTokenPair(sampleUser())
		require.NoError(t, err)

		claims, err := service.ValidateAndExtractClaims(accessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
