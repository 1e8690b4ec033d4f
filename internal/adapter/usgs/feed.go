package usgs

import (
	"context"

	"github.com/benzi604/earthquakes/internal/domain"
)

// Feed binds a client to one fixed query, giving callers a parameterless
// fetch. It implements report.Source.
type Feed struct {
	client *Client
	query  Query
}

// NewFeed creates a feed for the given query.
func NewFeed(client *Client, query Query) *Feed {
	return &Feed{client: client, query: query}
}

// Fetch retrieves the feed's catalog.
func (f *Feed) Fetch(ctx context.Context) (domain.Catalog, []byte, error) {
	return f.client.Fetch(ctx, f.query)
}
