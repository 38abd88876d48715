package domain

import (
	"context"
	"errors"
)

var ErrContentNotFound = errors.New("content not found")

// CatalogItem is a watchable piece of content eligible for room voting.
type CatalogItem struct {
	ContentID   string `json:"content_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	DurationMin int    `json:"duration_min"`
	Tags        string `json:"tags"`
}

type CatalogRepository interface {
	Upsert(ctx context.Context, item *CatalogItem) error
	GetByID(ctx context.Context, contentID string) (*CatalogItem, error)
	List(ctx context.Context) ([]CatalogItem, error)
}
