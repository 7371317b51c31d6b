package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/domain/types"
	"github.com/a11y-lab/statements/pkg/utils/errutil"
)

// issueFromForm builds an issue record from the submitted form values
func issueFromForm(r *http.Request) (*model.Issue, []string) {
	issue := &model.Issue{
		Title:              r.PostFormValue("title"),
		Description:        r.PostFormValue("description"),
		State:              types.IssueState(r.PostFormValue("state")),
		Source:             types.IssueSource(r.PostFormValue("source")),
		ReasonForNotFixing: r.PostFormValue("reasonForNotFixing"),
	}

	var problems []string

	if raw := r.PostFormValue("dateIdentified"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			problems = append(problems, "Date identified must be a valid date")
		} else {
			issue.DateIdentified = &t
		}
	}

	if raw := r.PostFormValue("planToFix"); raw != "" {
		planToFix := raw == "true"
		issue.PlanToFix = &planToFix
	}

	if raw := r.PostFormValue("planToFixDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			problems = append(problems, "Plan to fix date must be a valid date")
		} else {
			issue.PlanToFixDate = &t
		}
	}

	if raw := r.PostFormValue("serviceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			problems = append(problems, "Service record ID must be a number")
		} else {
			issue.ServiceID = &id
		}
	}

	if err := issue.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	return issue, problems
}

func (s *Server) issuesIndexHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Issues")

	issues, err := s.uc.Client().ListIssues(r.Context())
	if err != nil {
		errutil.Handle(r.Context(), err, "failed to list issues")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
	}
	data.Data = issues

	s.renderer.Render(w, r, http.StatusOK, "issues_index", data)
}

func (s *Server) issuesDetailsHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Issue details")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	issue, err := s.uc.Client().GetIssue(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to get issue")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
		s.renderer.Render(w, r, http.StatusOK, "issues_details", data)
		return
	}

	data.Title = issue.Title
	data.Data = issue
	s.renderer.Render(w, r, http.StatusOK, "issues_details", data)
}

func (s *Server) issuesCreateFormHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Add issue")
	data.Data = &model.Issue{State: types.IssueStateOpen}
	s.renderer.Render(w, r, http.StatusOK, "issues_form", data)
}

func (s *Server) issuesCreateHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Add issue")

	issue, problems := issueFromForm(r)
	data.Data = issue
	if len(problems) > 0 {
		data.Errors = problems
		s.renderer.Render(w, r, http.StatusOK, "issues_form", data)
		return
	}

	// Records created through a form are always manually added
	issue.Origin = types.IssueOriginManual

	if _, err := s.uc.Client().CreateIssue(r.Context(), issue); err != nil {
		errutil.Handle(r.Context(), err, "failed to create issue")
		data.Errors = append(data.Errors, "The issue could not be saved. Please try again later.")
		s.renderer.Render(w, r, http.StatusOK, "issues_form", data)
		return
	}

	http.Redirect(w, r, "/issues", http.StatusSeeOther)
}

func (s *Server) issuesEditFormHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Edit issue")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	issue, err := s.uc.Client().GetIssue(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to get issue")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
		data.Data = &model.Issue{State: types.IssueStateOpen}
		s.renderer.Render(w, r, http.StatusOK, "issues_form", data)
		return
	}

	data.Data = issue
	s.renderer.Render(w, r, http.StatusOK, "issues_form", data)
}

func (s *Server) issuesEditHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Edit issue")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	issue, problems := issueFromForm(r)
	data.Data = issue
	if len(problems) > 0 {
		data.Errors = problems
		s.renderer.Render(w, r, http.StatusOK, "issues_form", data)
		return
	}

	if _, err := s.uc.Client().UpdateIssue(r.Context(), id, issue); err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to update issue")
		data.Errors = append(data.Errors, "The issue could not be saved. Please try again later.")
		s.renderer.Render(w, r, http.StatusOK, "issues_form", data)
		return
	}

	http.Redirect(w, r, "/issues", http.StatusSeeOther)
}

func (s *Server) issuesDeleteFormHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Delete issue")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	issue, err := s.uc.Client().GetIssue(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to get issue")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
		data.Data = &model.Issue{ID: id}
		s.renderer.Render(w, r, http.StatusOK, "issues_delete", data)
		return
	}

	data.Data = issue
	s.renderer.Render(w, r, http.StatusOK, "issues_delete", data)
}

func (s *Server) issuesDeleteHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Delete issue")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	if err := s.uc.Client().DeleteIssue(r.Context(), id); err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to delete issue")
		data.Errors = append(data.Errors, fmt.Sprintf("Issue %d could not be deleted. Please try again later.", id))
		data.Data = &model.Issue{ID: id}
		s.renderer.Render(w, r, http.StatusOK, "issues_delete", data)
		return
	}

	http.Redirect(w, r, "/issues", http.StatusSeeOther)
}
