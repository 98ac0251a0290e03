package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/godwinide/peakedge/database"
	"github.com/godwinide/peakedge/models"
)

// SiteRepository implements the singleton site configuration store
type SiteRepository struct {
	q queryable
}

// NewSiteRepository creates a site repository backed by the pool
func NewSiteRepository(db *database.DB) *SiteRepository {
	return &SiteRepository{q: db.Pool}
}

// newSiteRepositoryWithTx creates a site repository bound to a transaction
func newSiteRepositoryWithTx(tx queryable) *SiteRepository {
	return &SiteRepository{q: tx}
}

// Get returns the site configuration, or nil when none has been written yet
func (r *SiteRepository) Get(ctx context.Context) (*models.SiteConfig, error) {
	query := `SELECT id, wallet, updated_at FROM site_config ORDER BY id LIMIT 1`

	var cfg models.SiteConfig
	err := r.q.QueryRow(ctx, query).Scan(&cfg.ID, &cfg.Wallet, &cfg.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site config: %w", err)
	}
	return &cfg, nil
}

// SetWallet replaces the wallet address on every config row, inserting the
// row when the table is still empty. Repeating the same address leaves one
// row with that value.
func (r *SiteRepository) SetWallet(ctx context.Context, wallet string) error {
	result, err := r.q.Exec(ctx, `UPDATE site_config SET wallet = $1, updated_at = NOW()`, wallet)
	if err != nil {
		return fmt.Errorf("failed to update site wallet: %w", err)
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.q.Exec(ctx, `INSERT INTO site_config (wallet) VALUES ($1)`, wallet); err != nil {
		return fmt.Errorf("failed to insert site config: %w", err)
	}
	return nil
}
