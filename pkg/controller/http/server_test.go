package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/a11y-lab/statements/pkg/controller/http"
	"github.com/a11y-lab/statements/pkg/domain/model"
	"github.com/a11y-lab/statements/pkg/service/strapi"
	"github.com/a11y-lab/statements/pkg/usecase"
)

// fakeBackend is a minimal content backend for controller tests
type fakeBackend struct {
	services []model.Service
	users    []model.User
	creates  []model.Service
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/services", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"data": b.services})
		case http.MethodPost:
			var env struct {
				Data model.Service `json:"data"`
			}
			_ = json.NewDecoder(r.Body).Decode(&env)
			env.Data.ID = int64(len(b.services) + 1)
			b.creates = append(b.creates, env.Data)
			b.services = append(b.services, env.Data)
			_ = json.NewEncoder(w).Encode(map[string]any{"data": env.Data})
		}
	})

	mux.HandleFunc("/api/services/", func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.URL.Path, "/api/services/")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			for i := range b.services {
				if b.services[i].ID == id {
					w.Header().Set("Content-Type", "application/json")
					_ = json.NewEncoder(w).Encode(map[string]any{"data": b.services[i]})
					return
				}
			}
		}
		http.Error(w, `{"error":{"status":404}}`, http.StatusNotFound)
	})

	mux.HandleFunc("/api/issues", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(b.users)
	})

	return mux
}

func newTestServer(t *testing.T, backend *fakeBackend) *httptest.Server {
	t.Helper()

	backendSrv := httptest.NewServer(backend.handler())
	t.Cleanup(backendSrv.Close)

	client, err := strapi.New(backendSrv.URL)
	gt.NoError(t, err).Required()

	uc := usecase.New(client, usecase.WithAuth(usecase.NewNoAuthnUseCase("dev@example.com")))

	server, err := httpctrl.New(uc, httpctrl.WithStatementDefaults(httpctrl.StatementDefaults{
		Organisation: "Example Department",
		ContactEmail: "access@example.com",
	}))
	gt.NoError(t, err).Required()

	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return srv
}

func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	gt.NoError(t, err).Required()
	return &http.Client{Jar: jar}
}

func adminUser() model.User {
	admin := true
	return model.User{
		ID:              1,
		Email:           "dev@example.com",
		Username:        "dev@example.com",
		FirstName:       "Anonymous",
		LastName:        "User",
		EntraID:         "anonymous",
		IsAdministrator: &admin,
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	gt.NoError(t, err).Required()
	return string(body)
}

func TestHomePage(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{users: []model.User{adminUser()}})
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "Accessibility statement compliance")).True()
	gt.Bool(t, strings.Contains(body, "dev@example.com")).True()
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{})
	resp, err := http.Get(srv.URL + "/healthz")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Value(t, readBody(t, resp)).Equal("OK")
}

func TestServicesIndex(t *testing.T) {
	backend := &fakeBackend{
		services: []model.Service{{ID: 1, Name: "Tax portal", ServiceID: 42}},
		users:    []model.User{adminUser()},
	}
	srv := newTestServer(t, backend)
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/services")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "Tax portal")).True()
}

func TestServiceDetailsNotFound(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{users: []model.User{adminUser()}})
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/services/details/999")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	gt.Bool(t, strings.Contains(body, "Page not found")).True()
}

func TestServiceCreateRequiresCSRFToken(t *testing.T) {
	backend := &fakeBackend{users: []model.User{adminUser()}}
	srv := newTestServer(t, backend)
	browser := newBrowser(t)

	// POST without ever visiting a page: no CSRF cookie, no field
	resp, err := browser.PostForm(srv.URL+"/services/create", url.Values{
		"name":      []string{"Tax portal"},
		"serviceId": []string{"42"},
	})
	gt.NoError(t, err).Required()
	readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusForbidden)
	gt.Array(t, backend.creates).Length(0)
}

func TestServiceCreateWithCSRFToken(t *testing.T) {
	backend := &fakeBackend{users: []model.User{adminUser()}}
	srv := newTestServer(t, backend)
	browser := newBrowser(t)

	// Visit the form to receive the CSRF cookie
	resp, err := browser.Get(srv.URL + "/services/create")
	gt.NoError(t, err).Required()
	readBody(t, resp)
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

	srvURL, err := url.Parse(srv.URL)
	gt.NoError(t, err).Required()

	var csrf string
	for _, cookie := range browser.Jar.Cookies(srvURL) {
		if cookie.Name == "csrf_token" {
			csrf = cookie.Value
		}
	}
	gt.Bool(t, csrf != "").True()

	resp, err = browser.PostForm(srv.URL+"/services/create", url.Values{
		"_csrf":     []string{csrf},
		"name":      []string{"Tax portal"},
		"serviceId": []string{"42"},
	})
	gt.NoError(t, err).Required()
	readBody(t, resp)

	// The browser client follows the redirect back to the list page
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Array(t, backend.creates).Length(1)
	gt.Value(t, backend.creates[0].Name).Equal("Tax portal")
	gt.Value(t, backend.creates[0].ServiceID).Equal(42)
}

func TestServiceCreateValidation(t *testing.T) {
	backend := &fakeBackend{users: []model.User{adminUser()}}
	srv := newTestServer(t, backend)
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/services/create")
	gt.NoError(t, err).Required()
	readBody(t, resp)

	srvURL, err := url.Parse(srv.URL)
	gt.NoError(t, err).Required()
	var csrf string
	for _, cookie := range browser.Jar.Cookies(srvURL) {
		if cookie.Name == "csrf_token" {
			csrf = cookie.Value
		}
	}

	// Missing name: the form re-renders with an error, nothing is submitted
	resp, err = browser.PostForm(srv.URL+"/services/create", url.Values{
		"_csrf":     []string{csrf},
		"serviceId": []string{"42"},
	})
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "error-summary")).True()
	gt.Array(t, backend.creates).Length(0)
}

// newErrorBackendServer serves the app against a backend that answers every
// call with a 500
func newErrorBackendServer(t *testing.T) *httptest.Server {
	t.Helper()

	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(backendSrv.Close)

	client, err := strapi.New(backendSrv.URL)
	gt.NoError(t, err).Required()

	uc := usecase.New(client, usecase.WithAuth(usecase.NewNoAuthnUseCase("dev@example.com")))
	server, err := httpctrl.New(uc)
	gt.NoError(t, err).Required()

	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return srv
}

func TestServicesIndexBackendDown(t *testing.T) {
	srv := newErrorBackendServer(t)
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/services")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	// The page still renders, with an error summary instead of records
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "error-summary")).True()
}

func TestServiceDetailsBackendDown(t *testing.T) {
	srv := newErrorBackendServer(t)
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/services/details/1")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	// A backend failure is not a missing record and not a bare error page
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "error-summary")).True()
	gt.Bool(t, strings.Contains(body, "Page not found")).False()
}

func TestIssueDetailsBackendDown(t *testing.T) {
	srv := newErrorBackendServer(t)
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/issues/details/1")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "error-summary")).True()
	gt.Bool(t, strings.Contains(body, "Page not found")).False()
}

func TestDashboardBackendDown(t *testing.T) {
	srv := newErrorBackendServer(t)
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/dashboard")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "error-summary")).True()
	gt.Bool(t, strings.Contains(body, "Dashboard")).True()
}

func TestSettingsRequiresAdmin(t *testing.T) {
	regular := adminUser()
	regular.IsAdministrator = nil

	srv := newTestServer(t, &fakeBackend{users: []model.User{regular}})
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/settings")
	gt.NoError(t, err).Required()
	readBody(t, resp)
	gt.Value(t, resp.StatusCode).Equal(http.StatusForbidden)
}

func TestSettingsForAdmin(t *testing.T) {
	backend := &fakeBackend{users: []model.User{adminUser()}}
	srv := newTestServer(t, backend)
	browser := newBrowser(t)

	resp, err := browser.Get(srv.URL + "/settings")
	gt.NoError(t, err).Required()
	body := readBody(t, resp)

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(body, "Example Department")).True()
}
