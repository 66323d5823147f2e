package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrInvalidToken               = errors.New("invalid token")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrTokenExpired               = errors.New("token expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token revoked")
	ErrOAuthStateMismatch         = errors.New("oauth state mismatch")
	ErrEmailNotVerified           = errors.New("email not verified")
)
