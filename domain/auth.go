package domain

import "errors"

var (
	MessageSuccessVerifyToken = "token verified successfully"
	MessageSuccessLogout      = "logged out successfully"

	MessageFailedVerifyToken = "failed to verify token"

	ErrIDTokenRequired = errors.New("ID token is required")
	ErrInvalidIDToken  = errors.New("invalid ID token")
)

type (
	VerifyTokenRequest struct {
		IDToken string `json:"id_token" validate:"required"`
	}

	AuthUser struct {
		UID   string `json:"uid"`
		Email string `json:"email"`
		Name  string `json:"name,omitempty"`
	}

	VerifyTokenResponse struct {
		Token string   `json:"token"`
		User  AuthUser `json:"user"`
	}
)
