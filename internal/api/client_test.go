package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/biogleam/biogleam/internal/auth"
	"github.com/biogleam/biogleam/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *auth.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := &auth.MemoryStore{}
	return New(srv.URL, store, opts...), store
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"leads": [], "pagination": {"page": 1, "limit": 10, "total": 0}}`))
	})

	if err := store.Save("tok-123"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.ListLeads(context.Background(), ListParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hasRequestID bool
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		hasRequestID = r.Header.Get("X-Request-ID") != ""
		w.Write([]byte(`{"leads": []}`))
	})

	if _, err := client.ListLeads(context.Background(), ListParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization header should be absent, got %q", gotAuth)
	}
	if !hasRequestID {
		t.Error("X-Request-ID header should be set on every request")
	}
}

func TestClient_UnauthorizedDiscardsTokenAndFiresHook(t *testing.T) {
	hookFired := false
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "token expired"}`))
	}, WithOnUnauthorized(func() { hookFired = true }))

	if err := store.Save("stale"); err != nil {
		t.Fatal(err)
	}

	_, err := client.ListLeads(context.Background(), ListParams{})
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if !hookFired {
		t.Error("OnUnauthorized hook should fire on a non-login 401")
	}
	if _, err := store.Load(); err != auth.ErrNotFound {
		t.Errorf("token should be discarded after 401, Load err = %v", err)
	}
}

func TestClient_Login401PassesThrough(t *testing.T) {
	hookFired := false
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/auth/login") {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "invalid credentials"}`))
			return
		}
		w.Write([]byte(`{}`))
	}, WithOnUnauthorized(func() { hookFired = true }))

	if err := store.Save("existing"); err != nil {
		t.Fatal(err)
	}

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if hookFired {
		t.Error("a login 401 is credential feedback and must not fire the hook")
	}
	if tok, err := store.Load(); err != nil || tok != "existing" {
		t.Errorf("login 401 must not discard the stored token, got %q, %v", tok, err)
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "invalid credentials" {
		t.Errorf("backend wording should survive, got %v", err)
	}
}

func TestClient_LoginPersistsToken(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "fresh-token", "user": {"id": 7, "name": "Ada", "email": "ada@biogleam.com", "role": "admin", "created_at": "2025-01-01"}}`))
	})

	payload, err := client.Login(context.Background(), "ada@biogleam.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.User == nil || payload.User.Role != models.RoleAdmin {
		t.Fatalf("user not decoded: %+v", payload.User)
	}
	if payload.User.CreatedAt != "2025-01-01" {
		t.Errorf("snake_case field not normalized, createdAt = %q", payload.User.CreatedAt)
	}
	if tok, err := store.Load(); err != nil || tok != "fresh-token" {
		t.Errorf("token not persisted, got %q, %v", tok, err)
	}
}

func TestClient_ListEnvelopes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects":
			w.Write([]byte(`{"projects": [{"id": 1, "title": "Shopfront", "slug": "shopfront", "cover_image": "/img/s.png"}], "pagination": {"page": 1, "total": 1}}`))
		case "/leads":
			w.Write([]byte(`{"leads": [{"id": 9, "name": "Sam", "phone": "555", "project_type": "redesign", "message": "hi"}], "pagination": {"page": 2, "limit": 10, "total": 31, "total_pages": 4}}`))
		default:
			http.NotFound(w, r)
		}
	})

	// Projects unwrap to the bare slice.
	projects, err := client.ListProjects(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 || projects[0].CoverImage != "/img/s.png" {
		t.Errorf("projects = %+v", projects)
	}

	// Leads keep the envelope so callers can page.
	leads, err := client.ListLeads(context.Background(), ListParams{Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads.Leads) != 1 || leads.Leads[0].ProjectType != "redesign" {
		t.Errorf("leads = %+v", leads.Leads)
	}
	if leads.Pagination == nil || leads.Pagination.TotalPages != 4 {
		t.Errorf("pagination = %+v", leads.Pagination)
	}
}

func TestClient_CreateLeadValidatesBeforeNetwork(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"id": 1}`))
	})

	_, err := client.CreateLead(context.Background(), models.LeadInput{
		Name:        "Sam",
		ProjectType: "redesign",
		Message:     "hi",
		// Phone missing
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if requests != 0 {
		t.Errorf("invalid input must not reach the network, saw %d requests", requests)
	}
}

func TestClient_DecodesFullClientAndReviewRecords(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/clients/3":
			w.Write([]byte(`{"id": 3, "name": "Acme", "company": "Acme Co", "address": "1 Main St",
				"city": "Lisbon", "state": "Lisboa", "country": "PT",
				"website": "https://acme.example", "notes": "prefers email", "status": "active"}`))
		case "/reviews/4":
			w.Write([]byte(`{"id": 4, "name": "Ada", "position": "CTO", "company": "Acme",
				"rating": 5, "review_text": "Great work.", "avatar_url": "/uploads/ada.png",
				"featured": true, "display_order": 2}`))
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()

	rec, err := client.GetClient(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Address != "1 Main St" || rec.State != "Lisboa" || rec.Country != "PT" {
		t.Errorf("location fields = %+v", rec)
	}
	if rec.Website != "https://acme.example" || rec.Notes != "prefers email" {
		t.Errorf("website/notes = %+v", rec)
	}

	review, err := client.GetReview(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Position != "CTO" || review.AvatarURL != "/uploads/ada.png" {
		t.Errorf("position/avatar = %+v", review)
	}
	if review.ReviewText != "Great work." || review.DisplayOrder != 2 {
		t.Errorf("snake_case fields not normalized: %+v", review)
	}
}

func TestClient_ErrorCarriesWireRequestID(t *testing.T) {
	var wireID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		wireID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "boom"}`))
	})

	_, err := client.GetLead(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if wireID == "" {
		t.Fatal("request went out without an X-Request-ID header")
	}
	if apiErr.RequestID != wireID {
		t.Errorf("RequestID = %q, want the wire value %q", apiErr.RequestID, wireID)
	}
}

func TestClient_ErrorBodyDecoding(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "project not found"}`))
	})

	_, err := client.GetProject(context.Background(), "nope")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if !strings.Contains(err.Error(), "project not found") {
		t.Errorf("backend message should survive, got %q", err.Error())
	}
}
