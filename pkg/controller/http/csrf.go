package http

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/utils/errutil"
)

const (
	csrfCookieName = "csrf_token"
	csrfFieldName  = "_csrf"
)

func newCSRFToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", goerr.Wrap(err, "failed to generate CSRF token")
	}
	return hex.EncodeToString(buf), nil
}

// csrfMiddleware implements double-submit cookie CSRF protection. GET requests
// are issued a token cookie when missing; mutating requests must echo the
// cookie value in the "_csrf" form field before any handler runs.
func csrfMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(csrfCookieName)

		switch r.Method {
		case http.MethodGet, http.MethodHead:
			if err != nil || cookie.Value == "" {
				token, err := newCSRFToken()
				if err != nil {
					errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
				// Make the fresh token visible to this request's handler
				r.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
			}

		default:
			if err != nil || cookie.Value == "" {
				http.Error(w, "CSRF token missing", http.StatusForbidden)
				return
			}
			if parseErr := r.ParseForm(); parseErr != nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(parseErr, "failed to parse form"), http.StatusBadRequest)
				return
			}
			field := r.PostFormValue(csrfFieldName)
			if subtle.ConstantTimeCompare([]byte(field), []byte(cookie.Value)) != 1 {
				http.Error(w, "CSRF token mismatch", http.StatusForbidden)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// csrfToken returns the token the page should embed in its forms
func csrfToken(r *http.Request) string {
	if cookie, err := r.Cookie(csrfCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
