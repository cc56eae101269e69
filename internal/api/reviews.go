package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biogleam/biogleam/internal/models"
)

const resourceReviews = "reviews"

// ReviewList is the full list envelope, pagination included.
type ReviewList struct {
	Reviews    []models.Review    `json:"reviews"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// ListReviews returns testimonials with pagination intact.
func (c *Client) ListReviews(ctx context.Context, params ListParams) (*ReviewList, error) {
	if cached, ok := c.cache.get(resourceReviews, params.cacheKey()); ok {
		return cached.(*ReviewList), nil
	}
	var out ReviewList
	if err := c.do(ctx, http.MethodGet, "/reviews", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.cache.put(resourceReviews, params.cacheKey(), &out)
	return &out, nil
}

// GetReview fetches a testimonial by ID.
func (c *Client) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReview adds a testimonial.
func (c *Client) CreateReview(ctx context.Context, input models.ReviewInput) (*models.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var out models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, input, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceReviews)
	return &out, nil
}

// UpdateReview replaces a testimonial. The backend routes review updates
// through PUT, not PATCH like the other resources.
func (c *Client) UpdateReview(ctx context.Context, id int64, update models.ReviewUpdate) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/reviews/%d", id), nil, update, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourceReviews)
	return &out, nil
}

// DeleteReview removes a testimonial.
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(resourceReviews)
	return nil
}
