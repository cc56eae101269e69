package api

import (
	"net/url"
	"strconv"
)

// ListParams are the pagination and filter knobs shared by the list
// endpoints. Zero values are omitted from the query string.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

// cacheKey is the canonical form of the params used to key cached lists.
// url.Values.Encode sorts keys, so equal params always collide.
func (p ListParams) cacheKey() string {
	return p.values().Encode()
}
