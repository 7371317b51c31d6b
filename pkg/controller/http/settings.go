package http

import (
	"net/http"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/utils/errutil"
)

type settingsPage struct {
	Defaults  StatementDefaults
	Templates []model.StatementTemplate
	Settings  []model.StatementSetting
}

// settingsHandler shows statement templates and settings. Administrators only.
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Settings")

	if !data.Admin {
		http.Error(w, "Administrator access required", http.StatusForbidden)
		return
	}

	page := settingsPage{Defaults: s.statementDefaults}

	templates, err := s.uc.Client().ListStatementTemplates(r.Context())
	if err != nil {
		errutil.Handle(r.Context(), err, "failed to list statement templates")
		data.Errors = append(data.Errors, "Statement templates could not be loaded.")
	}
	page.Templates = templates

	settings, err := s.uc.Client().ListStatementSettings(r.Context())
	if err != nil {
		errutil.Handle(r.Context(), err, "failed to list statement settings")
		data.Errors = append(data.Errors, "Statement settings could not be loaded.")
	}
	page.Settings = settings

	data.Data = page
	s.renderer.Render(w, r, http.StatusOK, "settings", data)
}
