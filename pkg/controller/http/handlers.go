package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/a11y-lab/statements/pkg/domain/model/auth"
	"github.com/a11y-lab/statements/pkg/service/strapi"
	"github.com/a11y-lab/statements/pkg/utils/logging"
)

// pageData assembles the common template data for the current request. The
// admin flag comes from the backend user record; a failed lookup only hides
// the admin navigation, it never blocks the page.
func (s *Server) pageData(r *http.Request, title string) *PageData {
	data := &PageData{
		Title: title,
		CSRF:  csrfToken(r),
	}

	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		return data
	}
	data.User = token

	user, err := s.uc.User.GetByEmail(r.Context(), token.Email)
	if err != nil {
		logging.From(r.Context()).Debug("admin lookup failed", "email", token.Email, "error", err)
		return data
	}
	if user != nil {
		data.Admin = user.Admin()
	}

	return data
}

// pathID parses the {id} route parameter
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.New("invalid record id", goerr.V("id", raw))
	}
	return id, nil
}

// isNotFound reports whether the backend said the record does not exist
func isNotFound(err error) bool {
	return errors.Is(err, strapi.ErrNotFound)
}
