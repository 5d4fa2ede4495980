package auth

import (
	"FreshKeep-Backend/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type (
	// IdentityClaims are the verified claims returned by the external
	// identity provider. This system trusts them as-is.
	IdentityClaims struct {
		UID   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	// TokenVerifier checks an ID token with the identity provider.
	TokenVerifier interface {
		VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error)
	}

	httpTokenVerifier struct {
		endpoint   string
		httpClient *http.Client
	}
)

// NewHTTPTokenVerifier verifies ID tokens against a tokeninfo-style
// endpoint that returns the subject and email claims as JSON.
func NewHTTPTokenVerifier(endpoint string) TokenVerifier {
	return &httpTokenVerifier{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (v *httpTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error) {
	verifyURL := fmt.Sprintf("%s?id_token=%s", v.endpoint, url.QueryEscape(idToken))

	req, err := http.NewRequestWithContext(ctx, "GET", verifyURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrInvalidIDToken
	}

	var claims IdentityClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, err
	}

	if claims.UID == "" || claims.Email == "" {
		return nil, domain.ErrInvalidIDToken
	}

	return &claims, nil
}
