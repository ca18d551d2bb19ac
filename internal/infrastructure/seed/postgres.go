package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"vitrine-backend/internal/domains/content/model"
	"vitrine-backend/pkg/database"
)

const createContentItemsTable = `
CREATE TABLE IF NOT EXISTS content_items (
    category    TEXT        NOT NULL,
    position    INTEGER     NOT NULL,
    id          TEXT        NOT NULL,
    name        TEXT        NOT NULL DEFAULT '',
    title       TEXT        NOT NULL DEFAULT '',
    content     TEXT        NOT NULL,
    description TEXT        NOT NULL DEFAULT '',
    image_url   TEXT        NOT NULL DEFAULT '',
    visible     BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (category, id)
)`

const selectContentItems = `
SELECT category, id, name, title, content, description, image_url, visible, created_at, updated_at
FROM content_items
ORDER BY category, position`

const insertContentItem = `
INSERT INTO content_items
    (category, position, id, name, title, content, description, image_url, visible, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

type contentRow struct {
	Category    string    `db:"category"`
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Visible     bool      `db:"visible"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// PostgresProvider loads the initial collections from the content_items table.
// When Bootstrap is set and the table is empty, the demo catalogue is inserted first.
type PostgresProvider struct {
	pool      *pgxpool.Pool
	Bootstrap bool
}

func NewPostgresProvider(pool *pgxpool.Pool, bootstrap bool) *PostgresProvider {
	return &PostgresProvider{pool: pool, Bootstrap: bootstrap}
}

func (p *PostgresProvider) Load(ctx context.Context) (map[model.Category][]model.Item, error) {
	// STEP 1: Schema
	if _, err := p.pool.Exec(ctx, createContentItemsTable); err != nil {
		return nil, fmt.Errorf("create content_items: %w", err)
	}

	// STEP 2: Optional bootstrap of an empty table
	if p.Bootstrap {
		if err := p.bootstrap(ctx); err != nil {
			return nil, err
		}
	}

	// STEP 3: Load in display order
	rows, err := p.pool.Query(ctx, selectContentItems)
	if err != nil {
		return nil, fmt.Errorf("query content_items: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[contentRow])
	if err != nil {
		return nil, fmt.Errorf("scan content_items: %w", err)
	}

	out := make(map[model.Category][]model.Item, len(model.Categories()))
	for _, r := range records {
		category, err := model.ParseCategory(r.Category)
		if err != nil {
			return nil, fmt.Errorf("content_items row %q: %w", r.ID, err)
		}
		out[category] = append(out[category], model.Item{
			ID:          r.ID,
			Name:        r.Name,
			Title:       r.Title,
			Content:     r.Content,
			Description: r.Description,
			ImageURL:    r.ImageURL,
			Visible:     r.Visible,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	log.Info().Int("items", len(records)).Msg("[SEED] Loaded content from PostgreSQL")
	return out, nil
}

func (p *PostgresProvider) bootstrap(ctx context.Context) error {
	return database.WithTransaction(ctx, p.pool, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM content_items").Scan(&count); err != nil {
			return fmt.Errorf("count content_items: %w", err)
		}
		if count > 0 {
			return nil
		}

		catalogue := Fixtures(time.Now())
		batch := &pgx.Batch{}
		for _, category := range model.Categories() {
			for position, item := range catalogue[category] {
				batch.Queue(insertContentItem,
					string(category), position, item.ID, item.Name, item.Title, item.Content,
					item.Description, item.ImageURL, item.Visible, item.CreatedAt, item.UpdatedAt,
				)
			}
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert demo catalogue: %w", err)
		}

		log.Info().Int("items", batch.Len()).Msg("[SEED] Bootstrapped content_items with demo catalogue")
		return nil
	})
}
