package usecase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/domain/interfaces"
	"github.com/a11y-lab/statements/pkg/domain/model/auth"
	"github.com/a11y-lab/statements/pkg/utils/safe"
)

// AuthUseCase implements the Microsoft Entra OpenID Connect flow. Claims are
// verified against the tenant's published JWK set before a session is issued.
type AuthUseCase struct {
	sessions     interfaces.SessionStore
	tenantID     string
	clientID     string
	clientSecret string
	callbackURL  string
}

var _ AuthUseCaseInterface = &AuthUseCase{}

// NewAuthUseCase creates the Entra authentication use case
func NewAuthUseCase(sessions interfaces.SessionStore, tenantID, clientID, clientSecret, callbackURL string) *AuthUseCase {
	return &AuthUseCase{
		sessions:     sessions,
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		callbackURL:  callbackURL,
	}
}

// IsNoAuthn returns false for the regular AuthUseCase
func (uc *AuthUseCase) IsNoAuthn() bool {
	return false
}

func (uc *AuthUseCase) authorityURL() string {
	return "https://login.microsoftonline.com/" + url.PathEscape(uc.tenantID)
}

// GetAuthURL returns the Entra authorization URL for the OAuth dance
func (uc *AuthUseCase) GetAuthURL(state string) string {
	params := url.Values{}
	params.Set("client_id", uc.clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", uc.callbackURL)
	params.Set("response_mode", "query")
	params.Set("scope", "openid profile email")
	params.Set("state", state)

	return uc.authorityURL() + "/oauth2/v2.0/authorize?" + params.Encode()
}

// openIDConfiguration is the subset of the tenant's discovery document we use
type openIDConfiguration struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	JWKSURI               string `json:"jwks_uri"`
}

type entraTokenResponse struct {
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	ExpiresIn        int    `json:"expires_in"`
	AccessToken      string `json:"access_token"`
	IDToken          string `json:"id_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HandleCallback exchanges the authorization code, verifies the ID token and
// issues a session token
func (uc *AuthUseCase) HandleCallback(ctx context.Context, code string) (*auth.Token, error) {
	config, err := uc.getOpenIDConfiguration(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get OpenID configuration")
	}

	tokenResp, err := uc.exchangeCodeForToken(ctx, config, code)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to exchange code for token")
	}
	if tokenResp.Error != "" {
		return nil, goerr.New("entra token error",
			goerr.V("error", tokenResp.Error),
			goerr.V("description", tokenResp.ErrorDescription),
		)
	}

	claims, err := uc.decodeIDToken(ctx, config, tokenResp.IDToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode ID token")
	}

	token := auth.NewToken(claims.ObjectID, claims.Email, claims.Name)
	if err := uc.sessions.PutToken(ctx, token); err != nil {
		return nil, goerr.Wrap(err, "failed to store session token", goerr.V("email", claims.Email))
	}

	return token, nil
}

// getOpenIDConfiguration fetches the tenant's OpenID Connect discovery document
func (uc *AuthUseCase) getOpenIDConfiguration(ctx context.Context) (*openIDConfiguration, error) {
	endpoint := uc.authorityURL() + "/v2.0/.well-known/openid-configuration"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch OpenID configuration")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("failed to fetch OpenID configuration", goerr.V("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read OpenID configuration response")
	}

	var config openIDConfiguration
	if err := json.Unmarshal(body, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse OpenID configuration")
	}

	return &config, nil
}

// exchangeCodeForToken trades the authorization code for tokens
func (uc *AuthUseCase) exchangeCodeForToken(ctx context.Context, config *openIDConfiguration, code string) (*entraTokenResponse, error) {
	data := url.Values{}
	data.Set("client_id", uc.clientID)
	data.Set("client_secret", uc.clientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", uc.callbackURL)
	data.Set("grant_type", "authorization_code")
	data.Set("scope", "openid profile email")

	encoded := data.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.TokenEndpoint, strings.NewReader(encoded))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.ContentLength = int64(len(encoded))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to make token request")
	}
	defer safe.Close(ctx, resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read token response")
	}

	var tokenResp entraTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, goerr.Wrap(err, "failed to parse token response")
	}

	return &tokenResp, nil
}

// decodeIDToken verifies the ID token against the tenant's JWK set and
// extracts the identity claims
func (uc *AuthUseCase) decodeIDToken(ctx context.Context, config *openIDConfiguration, idToken string) (*auth.Claims, error) {
	keySet, err := jwk.Fetch(ctx, config.JWKSURI)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch tenant public keys", goerr.V("jwks_uri", config.JWKSURI))
	}

	// Allow 10 seconds of clock skew for time synchronization differences
	token, err := jwt.Parse([]byte(idToken),
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithAudience(uc.clientID),
		jwt.WithAcceptableSkew(10*time.Second),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse or verify ID token")
	}

	claims := &auth.Claims{}

	// Entra puts the sign-in address in preferred_username; email is a
	// fallback for guest accounts
	for _, key := range []string{"preferred_username", "email", "upn"} {
		if v, ok := token.Get(key); ok {
			if s, ok := v.(string); ok && s != "" {
				claims.Email = s
				break
			}
		}
	}
	if claims.Email == "" {
		return nil, goerr.New("email claim not found in ID token")
	}

	if v, ok := token.Get("name"); ok {
		if s, ok := v.(string); ok {
			claims.Name = s
		}
	}

	for _, key := range []string{"oid", "sub"} {
		if v, ok := token.Get(key); ok {
			if s, ok := v.(string); ok && s != "" {
				claims.ObjectID = s
				break
			}
		}
	}
	if claims.ObjectID == "" {
		// Fall back to the email address as the stable identifier
		claims.ObjectID = claims.Email
	}

	return claims, nil
}

// ValidateToken checks a session token pair and returns the session
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenID auth.TokenID, tokenSecret auth.TokenSecret) (*auth.Token, error) {
	token, err := uc.sessions.GetToken(ctx, tokenID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load session token")
	}

	if token.Secret != tokenSecret {
		return nil, goerr.New("session token secret mismatch", goerr.V("token_id", tokenID))
	}
	if token.Expired(time.Now()) {
		return nil, goerr.New("session token expired", goerr.V("token_id", tokenID))
	}

	return token, nil
}

// Logout deletes the session token
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID auth.TokenID) error {
	return uc.sessions.DeleteToken(ctx, tokenID)
}
