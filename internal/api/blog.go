package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biogleam/biogleam/internal/models"
)

const resourcePosts = "posts"

// ListBlogPosts returns the bare post slice, unwrapping the backend's
// {posts, pagination} envelope the same way the project list does. See
// ListProjects for why this differs from the other list endpoints.
func (c *Client) ListBlogPosts(ctx context.Context, params ListParams) ([]models.BlogPost, error) {
	if cached, ok := c.cache.get(resourcePosts, params.cacheKey()); ok {
		return cached.([]models.BlogPost), nil
	}
	var out struct {
		Posts      []models.BlogPost  `json:"posts"`
		Pagination *models.Pagination `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, "/blog", params.values(), nil, &out); err != nil {
		return nil, err
	}
	c.cache.put(resourcePosts, params.cacheKey(), out.Posts)
	return out.Posts, nil
}

// GetBlogPost fetches a post by its public slug.
func (c *Client) GetBlogPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	var out models.BlogPost
	if err := c.do(ctx, http.MethodGet, "/blog/"+slug, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlogPost publishes a new article.
func (c *Client) CreateBlogPost(ctx context.Context, input models.BlogPostInput) (*models.BlogPost, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var out models.BlogPost
	if err := c.do(ctx, http.MethodPost, "/blog", nil, input, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourcePosts)
	return &out, nil
}

// UpdateBlogPost patches an article by ID.
func (c *Client) UpdateBlogPost(ctx context.Context, id int64, update models.BlogPostUpdate) (*models.BlogPost, error) {
	var out models.BlogPost
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/blog/%d", id), nil, update, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(resourcePosts)
	return &out, nil
}

// DeleteBlogPost removes an article.
func (c *Client) DeleteBlogPost(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/blog/%d", id), nil, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(resourcePosts)
	return nil
}
