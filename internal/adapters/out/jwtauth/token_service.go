// Package jwtauth implements token issuance and password hashing for the
// staff authentication flow.
package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"ecom/internal/core/ports"
	"ecom/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

// JwtTokenService issues and verifies HMAC-signed token pairs. The token
// type claim keeps a refresh token from passing as an access token.
type JwtTokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJwtTokenService creates a token service with the given signing secret
// and lifetimes.
func NewJwtTokenService(secret string, accessTTL, refreshTTL time.Duration) (*JwtTokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if accessTTL <= 0 {
		return nil, errs.NewValueIsInvalidError("accessTTL")
	}
	if refreshTTL <= 0 {
		return nil, errs.NewValueIsInvalidError("refreshTTL")
	}

	return &JwtTokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssuePair mints an access and a refresh token for the account.
func (s *JwtTokenService) IssuePair(accountID int64, email string) (ports.TokenPair, error) {
	now := time.Now().UTC()
	accessExpiresAt := now.Add(s.accessTTL)
	refreshExpiresAt := now.Add(s.refreshTTL)

	accessToken, err := s.sign(accountID, email, accessTokenType, now, accessExpiresAt)
	if err != nil {
		return ports.TokenPair{}, err
	}

	refreshToken, err := s.sign(accountID, email, refreshTokenType, now, refreshExpiresAt)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return ports.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// VerifyAccess validates an access token and returns the account id.
func (s *JwtTokenService) VerifyAccess(token string) (int64, error) {
	return s.verify(token, accessTokenType)
}

// VerifyRefresh validates a refresh token and returns the account id.
func (s *JwtTokenService) VerifyRefresh(token string) (int64, error) {
	return s.verify(token, refreshTokenType)
}

func (s *JwtTokenService) sign(accountID int64, email, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(accountID, 10),
		"email": email,
		"typ":   tokenType,
		"jti":   uuid.NewString(),
		"iat":   issuedAt.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JwtTokenService) verify(tokenString, expectedType string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errs.NewValueIsInvalidError("token")
	}

	tokenType, _ := claims["typ"].(string)
	if tokenType != expectedType {
		return 0, errs.NewValueIsInvalidError("token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("token", errors.New("malformed subject"))
	}

	return accountID, nil
}
