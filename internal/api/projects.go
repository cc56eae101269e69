package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biogleam/biogleam/internal/models"
)

const resourceProjects = "projects"

// ListProjects returns the bare project slice. The backend wraps project
// lists in a {projects, pagination} envelope and this wrapper discards
// the pagination block, unlike the lead, user, and client lists which
// keep theirs. The asymmetry is the observed backend contract, carried
// over as-is rather than unified.
func (c *Client) ListProjects(ctx context.Context, params ListParams) ([]models.Project, error) {
	if cached, ok := c.cache.get(resourceProjects, params.cacheKey()); ok {
		return cached.([]models.Project), nil
	}
	var out struct {
		Projects   []models.Project   `json:"projects"`
		Pagination *models.Pagination `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, "/projects", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.cache.put(resourceProjects, params.cacheKey(), out.Projects)
	return out.Projects, nil
}

// GetProject fetches a project by its public slug.
func (c *Client) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	var out models.Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+slug, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject adds a portfolio entry.
func (c *Client) CreateProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var out models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, input, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceProjects)
	return &out, nil
}

// UpdateProject patches a project by ID.
func (c *Client) UpdateProject(ctx context.Context, id int64, update models.ProjectUpdate) (*models.Project, error) {
	var out models.Project
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/%d", id), nil, update, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceProjects)
	return &out, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(resourceProjects)
	return nil
}
