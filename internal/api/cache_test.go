package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/biogleam/biogleam/internal/models"
)

func TestListCache_ServesRepeatReadsWithoutRefetch(t *testing.T) {
	listCalls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/projects" {
			listCalls++
			w.Write([]byte(`{"projects": [{"id": 1, "title": "Demo", "slug": "demo"}]}`))
			return
		}
		http.NotFound(w, r)
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		projects, err := client.ListProjects(ctx, ListParams{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 1 || projects[0].Slug != "demo" {
			t.Fatalf("projects = %+v", projects)
		}
	}
	if listCalls != 1 {
		t.Errorf("backend hit %d times for identical params, want 1", listCalls)
	}

	// Different params are a different cache entry.
	if _, err := client.ListProjects(ctx, ListParams{Limit: 10, Page: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listCalls != 2 {
		t.Errorf("backend hit %d times after a new param set, want 2", listCalls)
	}
}

func TestListCache_MutationInvalidatesResource(t *testing.T) {
	projects := []models.Project{{ID: 1, Title: "Demo", Slug: "demo"}}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/projects":
			json.NewEncoder(w).Encode(map[string]any{"projects": projects})
		case r.Method == http.MethodDelete && r.URL.Path == "/projects/1":
			projects = nil
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()

	got, err := client.ListProjects(ctx, ListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the seeded project, got %+v", got)
	}

	if err := client.DeleteProject(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The delete must have dropped the cached list, so this re-fetches.
	got, err = client.ListProjects(ctx, ListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("stale list served after mutation: %+v", got)
	}
}

func TestListCache_InvalidationIsPerResource(t *testing.T) {
	projectCalls, postCalls := 0, 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/projects":
			projectCalls++
			w.Write([]byte(`{"projects": []}`))
		case r.Method == http.MethodGet && r.URL.Path == "/blog":
			postCalls++
			w.Write([]byte(`{"posts": []}`))
		case r.Method == http.MethodPost && r.URL.Path == "/projects":
			w.Write([]byte(`{"id": 2, "title": "New", "slug": "new"}`))
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()
	if _, err := client.ListProjects(ctx, ListParams{}); err != nil {
		t.Fatal(err)
	}
	if _, err := client.ListBlogPosts(ctx, ListParams{}); err != nil {
		t.Fatal(err)
	}

	if _, err := client.CreateProject(ctx, models.ProjectInput{Title: "New", Slug: "new"}); err != nil {
		t.Fatal(err)
	}

	if _, err := client.ListProjects(ctx, ListParams{}); err != nil {
		t.Fatal(err)
	}
	if _, err := client.ListBlogPosts(ctx, ListParams{}); err != nil {
		t.Fatal(err)
	}

	if projectCalls != 2 {
		t.Errorf("project list fetched %d times, want 2 (cache dropped by create)", projectCalls)
	}
	if postCalls != 1 {
		t.Errorf("blog list fetched %d times, want 1 (unrelated mutation must not evict)", postCalls)
	}
}

func TestListParams_CacheKeyCanonical(t *testing.T) {
	a := ListParams{Page: 2, Limit: 10, Status: "created"}
	b := ListParams{Status: "created", Limit: 10, Page: 2}
	if a.cacheKey() != b.cacheKey() {
		t.Errorf("equal params produced different keys: %q vs %q", a.cacheKey(), b.cacheKey())
	}

	if (ListParams{}).cacheKey() != "" {
		t.Errorf("zero params should key to the empty string, got %q", ListParams{}.cacheKey())
	}

	if a.cacheKey() == (ListParams{Page: 2, Limit: 10}).cacheKey() {
		t.Error("different params must not collide")
	}
}
