package http

import (
	"net/http"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/utils/errutil"
)

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Dashboard")

	dashboard, err := s.uc.Dashboard.Build(r.Context())
	if err != nil {
		errutil.Handle(r.Context(), err, "failed to build dashboard")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
		dashboard = &model.Dashboard{}
	}

	data.Data = dashboard
	s.renderer.Render(w, r, http.StatusOK, "dashboard", data)
}
