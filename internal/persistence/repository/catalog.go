package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/db"
)

const (
	upsertCatalogSQL = `
INSERT INTO catalog (content_id, title, type, duration_min, tags)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (content_id)
DO UPDATE SET
    title = EXCLUDED.title,
    type = EXCLUDED.type,
    duration_min = EXCLUDED.duration_min,
    tags = EXCLUDED.tags;`

	getCatalogItemSQL = `
SELECT content_id, title, type, duration_min, tags FROM catalog WHERE content_id = $1;`

	listCatalogSQL = `
SELECT content_id, title, type, duration_min, tags FROM catalog ORDER BY title;`
)

type catalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(db db.DBTX) domain.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Upsert(ctx context.Context, item *domain.CatalogItem) error {
	_, err := r.db.ExecContext(ctx, upsertCatalogSQL,
		item.ContentID, item.Title, item.Type, item.DurationMin, item.Tags,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert catalog item: %w", err)
	}
	return nil
}

func (r *catalogRepository) GetByID(ctx context.Context, contentID string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.db.QueryRowContext(ctx, getCatalogItemSQL, contentID).Scan(
		&item.ContentID, &item.Title, &item.Type, &item.DurationMin, &item.Tags,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}

	return &item, nil
}

func (r *catalogRepository) List(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx, listCatalogSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(&item.ContentID, &item.Title, &item.Type, &item.DurationMin, &item.Tags); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}
