package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_JwtTokenService_IssueAndVerify(t *testing.T) {
	// Arrange
	service, err := NewJwtTokenService("test-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	// Act
	pair, err := service.IssuePair(42, "admin@example.com")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	accountID, err := service.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)

	accountID, err = service.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)
}

func Test_JwtTokenService_RejectsWrongTokenType(t *testing.T) {
	// Arrange
	service, err := NewJwtTokenService("test-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)
	pair, err := service.IssuePair(42, "admin@example.com")
	require.NoError(t, err)

	// Act
	_, accessAsRefreshErr := service.VerifyRefresh(pair.AccessToken)
	_, refreshAsAccessErr := service.VerifyAccess(pair.RefreshToken)

	// Assert
	assert.Error(t, accessAsRefreshErr)
	assert.Error(t, refreshAsAccessErr)
}

func Test_JwtTokenService_RejectsForeignSecret(t *testing.T) {
	// Arrange
	service, err := NewJwtTokenService("test-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)
	other, err := NewJwtTokenService("other-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	pair, err := other.IssuePair(42, "admin@example.com")
	require.NoError(t, err)

	// Act
	_, err = service.VerifyAccess(pair.AccessToken)

	// Assert
	assert.Error(t, err)
}

func Test_JwtTokenService_RejectsExpiredToken(t *testing.T) {
	// Arrange
	service, err := NewJwtTokenService("test-secret", time.Nanosecond, time.Nanosecond)
	require.NoError(t, err)
	pair, err := service.IssuePair(42, "admin@example.com")
	require.NoError(t, err)

	time.Sleep(time.Second)

	// Act
	_, err = service.VerifyAccess(pair.AccessToken)

	// Assert
	assert.Error(t, err)
}

func Test_JwtTokenService_InvalidParams(t *testing.T) {
	tests := map[string]struct {
		secret     string
		accessTTL  time.Duration
		refreshTTL time.Duration
	}{
		"empty secret":         {"", time.Minute, time.Hour},
		"non positive access":  {"secret", 0, time.Hour},
		"non positive refresh": {"secret", time.Minute, -time.Hour},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewJwtTokenService(tt.secret, tt.accessTTL, tt.refreshTTL)
			assert.Error(t, err)
		})
	}
}

func Test_BcryptPasswordHasher_HashAndCompare(t *testing.T) {
	// Arrange
	hasher := NewBcryptPasswordHasher()

	// Act
	hashed, err := hasher.Hash("s3cret-password")

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hashed)
	assert.NoError(t, hasher.Compare(hashed, "s3cret-password"))
	assert.Error(t, hasher.Compare(hashed, "wrong-password"))
}

func Test_BcryptPasswordHasher_EmptyPassword(t *testing.T) {
	hasher := NewBcryptPasswordHasher()

	_, err := hasher.Hash("")

	assert.Error(t, err)
}
