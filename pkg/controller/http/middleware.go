package http

import (
	"net/http"

	"github.com/a11y-lab/statements/pkg/domain/model/auth"
)

// sessionToken resolves the session token from the request cookies, or nil
// when the request is not authenticated
func sessionToken(r *http.Request, authUC AuthUseCase) *auth.Token {
	if authUC == nil {
		return nil
	}
	if authUC.IsNoAuthn() {
		token, err := authUC.ValidateToken(r.Context(), "", "")
		if err != nil {
			return nil
		}
		return token
	}

	tokenIDCookie, err := r.Cookie("token_id")
	if err != nil {
		return nil
	}
	tokenSecretCookie, err := r.Cookie("token_secret")
	if err != nil {
		return nil
	}

	token, err := authUC.ValidateToken(r.Context(),
		auth.TokenID(tokenIDCookie.Value),
		auth.TokenSecret(tokenSecretCookie.Value),
	)
	if err != nil {
		return nil
	}
	return token
}

// authMiddleware requires a valid session for page requests. Unauthenticated
// browsers are redirected to the sign-in flow rather than given a bare 401.
func authMiddleware(authUC AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, authUC)
			if token == nil {
				http.Redirect(w, r, "/auth/login", http.StatusTemporaryRedirect)
				return
			}

			ctx := auth.ContextWithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// optionalAuthMiddleware attaches the session token when one is present but
// lets anonymous requests through; the landing page serves both.
func optionalAuthMiddleware(authUC AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := sessionToken(r, authUC); token != nil {
				r = r.WithContext(auth.ContextWithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}
