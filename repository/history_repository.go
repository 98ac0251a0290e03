package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/godwinide/peakedge/database"
	"github.com/godwinide/peakedge/models"
)

// HistoryRepository implements the append-only transaction history store.
// It deliberately has no update or delete methods: records are immutable
// once written.
type HistoryRepository struct {
	q queryable
}

// NewHistoryRepository creates a history repository backed by the pool
func NewHistoryRepository(db *database.DB) *HistoryRepository {
	return &HistoryRepository{q: db.Pool}
}

// newHistoryRepositoryWithTx creates a history repository bound to a transaction
func newHistoryRepositoryWithTx(tx queryable) *HistoryRepository {
	return &HistoryRepository{q: tx}
}

// Record appends one transaction record and fills in its id and timestamp
func (r *HistoryRepository) Record(ctx context.Context, record *models.TransactionRecord) error {
	query := `
		INSERT INTO transactions (account_id, type, amount, status, account_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		record.AccountID,
		record.Type,
		record.Amount,
		record.Status,
		record.AccountEmail,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to record transaction for account %s: %w", record.AccountID, err)
	}
	return nil
}

// GetAll returns the full history, newest first
func (r *HistoryRepository) GetAll(ctx context.Context) ([]*models.TransactionRecord, error) {
	query := `
		SELECT id, account_id, type, amount, status, account_email, created_at
		FROM transactions
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// GetByAccount returns the most recent records for one account
func (r *HistoryRepository) GetByAccount(ctx context.Context, accountID string, limit int) ([]*models.TransactionRecord, error) {
	query := `
		SELECT id, account_id, type, amount, status, account_email, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]*models.TransactionRecord, error) {
	var records []*models.TransactionRecord
	for rows.Next() {
		var rec models.TransactionRecord
		err := rows.Scan(
			&rec.ID,
			&rec.AccountID,
			&rec.Type,
			&rec.Amount,
			&rec.Status,
			&rec.AccountEmail,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction record: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction records: %w", err)
	}
	return records, nil
}
