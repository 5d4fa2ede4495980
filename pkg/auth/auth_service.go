package auth

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/pkg/jwt"
	"context"
)

type (
	AuthService interface {
		VerifyToken(ctx context.Context, req domain.VerifyTokenRequest) (domain.VerifyTokenResponse, error)
	}

	authService struct {
		verifier   TokenVerifier
		jwtService jwt.JWTService
	}
)

func NewAuthService(verifier TokenVerifier, jwtService jwt.JWTService) AuthService {
	return &authService{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

// VerifyToken exchanges a provider-issued ID token for a session token
// carrying the verified subject and email.
func (s *authService) VerifyToken(ctx context.Context, req domain.VerifyTokenRequest) (domain.VerifyTokenResponse, error) {
	if req.IDToken == "" {
		return domain.VerifyTokenResponse{}, domain.ErrIDTokenRequired
	}

	claims, err := s.verifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return domain.VerifyTokenResponse{}, err
	}

	token, err := s.jwtService.GenerateToken(claims.UID, claims.Email)
	if err != nil {
		return domain.VerifyTokenResponse{}, err
	}

	return domain.VerifyTokenResponse{
		Token: token,
		User: domain.AuthUser{
			UID:   claims.UID,
			Email: claims.Email,
			Name:  claims.Name,
		},
	}, nil
}
