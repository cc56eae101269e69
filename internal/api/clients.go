package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biogleam/biogleam/internal/models"
)

const resourceClients = "clients"

// ClientList is the full list envelope, pagination included.
type ClientList struct {
	Clients    []models.Client    `json:"clients"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// ListClients returns customer records with pagination intact.
func (c *Client) ListClients(ctx context.Context, params ListParams) (*ClientList, error) {
	if cached, ok := c.cache.get(resourceClients, params.cacheKey()); ok {
		return cached.(*ClientList), nil
	}
	var out ClientList
	if err := c.do(ctx, http.MethodGet, "/clients", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.cache.put(resourceClients, params.cacheKey(), &out)
	return &out, nil
}

// GetClient fetches a customer record by ID.
func (c *Client) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient adds a customer record.
func (c *Client) CreateClient(ctx context.Context, input models.ClientInput) (*models.Client, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var out models.Client
	if err := c.do(ctx, http.MethodPost, "/clients", nil, input, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceClients)
	return &out, nil
}

// UpdateClient patches a customer record.
func (c *Client) UpdateClient(ctx context.Context, id int64, update models.ClientUpdate) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/clients/%d", id), nil, update, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceClients)
	return &out, nil
}

// DeleteClient removes a customer record.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(resourceClients)
	return nil
}
