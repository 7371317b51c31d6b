package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/utils/errutil"
)

// serviceFromForm builds a service record from the submitted form values
func serviceFromForm(r *http.Request) (*model.Service, []string) {
	service := &model.Service{
		Name:   r.PostFormValue("name"),
		FipsID: r.PostFormValue("fipsId"),
	}

	var problems []string
	if raw := r.PostFormValue("serviceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			problems = append(problems, "Service ID must be a number")
		} else {
			service.ServiceID = id
		}
	}

	if err := service.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	return service, problems
}

func (s *Server) servicesIndexHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Services")

	services, err := s.uc.Client().ListServices(r.Context())
	if err != nil {
		errutil.Handle(r.Context(), err, "failed to list services")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
	}
	data.Data = services

	s.renderer.Render(w, r, http.StatusOK, "services_index", data)
}

func (s *Server) servicesDetailsHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Service details")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	service, err := s.uc.Client().GetService(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to get service")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
		s.renderer.Render(w, r, http.StatusOK, "services_details", data)
		return
	}

	data.Title = service.Name
	data.Data = service
	s.renderer.Render(w, r, http.StatusOK, "services_details", data)
}

func (s *Server) servicesCreateFormHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Add service")
	data.Data = &model.Service{}
	s.renderer.Render(w, r, http.StatusOK, "services_form", data)
}

func (s *Server) servicesCreateHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Add service")

	service, problems := serviceFromForm(r)
	data.Data = service
	if len(problems) > 0 {
		data.Errors = problems
		s.renderer.Render(w, r, http.StatusOK, "services_form", data)
		return
	}

	if _, err := s.uc.Client().CreateService(r.Context(), service); err != nil {
		errutil.Handle(r.Context(), err, "failed to create service")
		data.Errors = append(data.Errors, "The service could not be saved. Please try again later.")
		s.renderer.Render(w, r, http.StatusOK, "services_form", data)
		return
	}

	http.Redirect(w, r, "/services", http.StatusSeeOther)
}

func (s *Server) servicesEditFormHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Edit service")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	service, err := s.uc.Client().GetService(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to get service")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
		data.Data = &model.Service{}
		s.renderer.Render(w, r, http.StatusOK, "services_form", data)
		return
	}

	data.Data = service
	s.renderer.Render(w, r, http.StatusOK, "services_form", data)
}

func (s *Server) servicesEditHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Edit service")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	service, problems := serviceFromForm(r)
	data.Data = service
	if len(problems) > 0 {
		data.Errors = problems
		s.renderer.Render(w, r, http.StatusOK, "services_form", data)
		return
	}

	if _, err := s.uc.Client().UpdateService(r.Context(), id, service); err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to update service")
		data.Errors = append(data.Errors, "The service could not be saved. Please try again later.")
		s.renderer.Render(w, r, http.StatusOK, "services_form", data)
		return
	}

	http.Redirect(w, r, "/services", http.StatusSeeOther)
}

func (s *Server) servicesDeleteFormHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Delete service")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	service, err := s.uc.Client().GetService(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to get service")
		data.Errors = append(data.Errors, "The content backend could not be reached. Please try again later.")
		data.Data = &model.Service{ID: id}
		s.renderer.Render(w, r, http.StatusOK, "services_delete", data)
		return
	}

	data.Data = service
	s.renderer.Render(w, r, http.StatusOK, "services_delete", data)
}

func (s *Server) servicesDeleteHandler(w http.ResponseWriter, r *http.Request) {
	data := s.pageData(r, "Delete service")

	id, err := pathID(r)
	if err != nil {
		s.renderer.NotFound(w, r, data)
		return
	}

	if err := s.uc.Client().DeleteService(r.Context(), id); err != nil {
		if isNotFound(err) {
			s.renderer.NotFound(w, r, data)
			return
		}
		errutil.Handle(r.Context(), err, "failed to delete service")
		data.Errors = append(data.Errors, fmt.Sprintf("Service %d could not be deleted. Please try again later.", id))
		data.Data = &model.Service{ID: id}
		s.renderer.Render(w, r, http.StatusOK, "services_delete", data)
		return
	}

	http.Redirect(w, r, "/services", http.StatusSeeOther)
}
