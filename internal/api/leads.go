package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biogleam/biogleam/internal/models"
)

const resourceLeads = "leads"

// LeadList is the full list envelope, pagination included.
type LeadList struct {
	Leads      []models.Lead      `json:"leads"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// CreateLead submits a contact request. The input is validated locally;
// nothing goes over the wire when required fields are missing.
func (c *Client) CreateLead(ctx context.Context, input models.LeadInput) (*models.Lead, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var out models.Lead
	if err := c.do(ctx, http.MethodPost, "/leads", nil, input, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceLeads)
	return &out, nil
}

// ListLeads returns leads with their pagination envelope intact.
func (c *Client) ListLeads(ctx context.Context, params ListParams) (*LeadList, error) {
	if cached, ok := c.cache.get(resourceLeads, params.cacheKey()); ok {
		return cached.(*LeadList), nil
	}
	var out LeadList
	if err := c.do(ctx, http.MethodGet, "/leads", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.cache.put(resourceLeads, params.cacheKey(), &out)
	return &out, nil
}

// GetLead fetches a single lead by ID.
func (c *Client) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	var out models.Lead
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/leads/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLead patches a lead; zero-value fields are left untouched.
func (c *Client) UpdateLead(ctx context.Context, id int64, update models.LeadUpdate) (*models.Lead, error) {
	var out models.Lead
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/leads/%d", id), nil, update, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceLeads)
	return &out, nil
}

// DeleteLead removes a lead.
func (c *Client) DeleteLead(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/leads/%d", id), nil, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(resourceLeads)
	return nil
}
