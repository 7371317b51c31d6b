package http

import (
	"net/http"

	"github.com/a11y-lab/statements/pkg/domain/model/auth"
	"github.com/a11y-lab/statements/pkg/utils/logging"
)

// homeHandler renders the landing page. For a signed-in visitor it also
// reconciles the backend user record with the session identity; a failed
// reconciliation is logged and the page still renders.
func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Home")

	if token, ok := auth.TokenFromContext(r.Context()); ok {
		claims := auth.Claims{
			Email:    token.Email,
			Name:     token.Name,
			ObjectID: token.Sub,
		}

		firstName, lastName := claims.FirstLast()
		if firstName == "" {
			firstName, lastName = "Unknown", "User"
		}

		if _, err := s.uc.User.EnsureUser(r.Context(), claims.Email, firstName, lastName, claims.ObjectID); err != nil {
			logging.From(r.Context()).Warn("user reconciliation failed",
				"email", claims.Email,
				"error", err,
			)
		}
	}

	s.renderer.Render(w, r, http.StatusOK, "home", data)
}
