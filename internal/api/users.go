package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biogleam/biogleam/internal/models"
)

const resourceUsers = "users"

// UserList is the full list envelope, pagination included.
type UserList struct {
	Users      []models.User      `json:"users"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// ListUsers returns accounts with pagination intact. Admin only.
func (c *Client) ListUsers(ctx context.Context, params ListParams) (*UserList, error) {
	if cached, ok := c.cache.get(resourceUsers, params.cacheKey()); ok {
		return cached.(*UserList), nil
	}
	var out UserList
	if err := c.do(ctx, http.MethodGet, "/admin/users", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.cache.put(resourceUsers, params.cacheKey(), &out)
	return &out, nil
}

// GetUser fetches an account by ID. Admin only.
func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser adds an account. Admin only.
func (c *Client) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/admin/users", nil, input, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceUsers)
	return &out, nil
}

// UpdateUser patches an account. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d", id), nil, update, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceUsers)
	return &out, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(resourceUsers)
	return nil
}

// GetAdminStats fetches the dashboard summary. Admin only.
func (c *Client) GetAdminStats(ctx context.Context) (*models.Stats, error) {
	var out models.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
