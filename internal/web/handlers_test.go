package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/biogleam/biogleam/internal/config"
	"github.com/biogleam/biogleam/internal/models"
)

func newTestServer(t *testing.T, backendURL string) *Server {
	t.Helper()
	srv, err := New(&config.Config{
		Server: config.ServerConfig{Addr: ":0"},
		API:    config.APIConfig{BaseURL: backendURL},
	}, zerolog.Nop(), "test")
	require.NoError(t, err)
	return srv
}

func TestContactSubmit_CreatesLead(t *testing.T) {
	var gotLead models.LeadInput
	leadPosts := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/leads" {
			leadPosts++
			json.NewDecoder(r.Body).Decode(&gotLead)
			w.Write([]byte(`{"id": 1, "name": "Sam", "phone": "555", "project_type": "redesign", "message": "hi", "status": "created"}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer backend.Close()

	srv := newTestServer(t, backend.URL)

	form := url.Values{
		"name":        {"Sam"},
		"email":       {"sam@example.com"},
		"phone":       {"555"},
		"projectType": {"redesign"},
		"packageType": {"Studio"},
		"message":     {"hi"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, leadPosts, "exactly one lead should reach the backend")
	require.Equal(t, "Sam", gotLead.Name)
	require.Equal(t, "555", gotLead.Phone)
	require.Equal(t, "Studio", gotLead.PackageType, "pricing package should reach the backend")
	require.Contains(t, rec.Body.String(), "Thanks", "success page should thank the visitor")
}

func TestContactSubmit_RejectsIncompleteFormLocally(t *testing.T) {
	backendHits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendHits++
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	srv := newTestServer(t, backend.URL)

	form := url.Values{
		"name":        {"Sam"},
		"projectType": {"redesign"},
		"message":     {"hi"},
		// phone missing
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Zero(t, backendHits, "invalid form must not reach the backend")
	// The visitor's input survives the round trip.
	require.Contains(t, rec.Body.String(), "Sam", "form should re-render with submitted values")
}

func TestContactForm_PrefillsPackageFromPricingLink(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodGet, "/contact?package=Studio", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `value="Studio"`, "package should pre-fill the hidden field")
	require.Contains(t, rec.Body.String(), "Selected package: Studio")

	// Unknown package names are dropped, not echoed back.
	req = httptest.NewRequest(http.MethodGet, "/contact?package=bogus", nil)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "Selected package")
	require.NotContains(t, rec.Body.String(), "bogus")
}

func TestPagesRenderWhenBackendIsDown(t *testing.T) {
	// Nothing listens here; every API call fails.
	srv := newTestServer(t, "http://127.0.0.1:1")

	for _, path := range []string{"/", "/projects", "/blog", "/services", "/pricing", "/about", "/contact"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		require.Equalf(t, http.StatusOK, rec.Code, "GET %s should render with empty sections", path)
	}
}

func TestProjectDetail_NotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "project not found"}`))
	}))
	defer backend.Close()

	srv := newTestServer(t, backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/projects/nope", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "online", body["status"])
}
