package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/FinRoots/finance_tracker_app/internal/core/ports/repositories"
	"github.com/FinRoots/finance_tracker_app/internal/models"
	"github.com/FinRoots/finance_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Reads join accounts to enforce ownership and categories to resolve the
// display name in one round trip.
const transactionSelect = `
	SELECT t.transaction_id, t.account_id, t.category_id, c.name AS category_name,
		t.date, t.amount, t.payee, t.notes,
		t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
	FROM transactions t
	JOIN accounts a ON a.account_id = t.account_id
	LEFT JOIN categories c ON c.category_id = t.category_id
`

const transactionInsert = `
	INSERT INTO transactions (transaction_id, account_id, category_id, date, amount, payee, notes,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.CategoryID,
		&m.CategoryName,
		&m.Date,
		&m.Amount,
		&m.Payee,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.AccountID,
		m.CategoryID,
		m.Date,
		m.Amount,
		m.Payee,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := r.Pool.Exec(ctx, transactionInsert, insertArgs(m)...); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// SaveTransactions inserts the whole batch in one database transaction; a
// failure on any row leaves nothing inserted.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(transactionInsert, insertArgs(mapping.ToModelTransaction(txn))...)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range txns {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to save transaction %d of %d: %w", i+1, len(txns), err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close transaction batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1 AND a.user_id = $2;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, period domain.Period, accountID string) ([]domain.Transaction, error) {
	query := transactionSelect + ` WHERE a.user_id = $1 AND t.date >= $2 AND t.date <= $3`
	args := []any{userID, period.From, period.To}
	if accountID != "" {
		query += ` AND t.account_id = $4`
		args = append(args, accountID)
	}
	query += ` ORDER BY t.date DESC, t.transaction_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, userID string) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions t
		SET account_id = $3, category_id = $4, date = $5, amount = $6, payee = $7, notes = $8,
			last_updated_at = $9, last_updated_by = $10
		FROM accounts a
		WHERE t.transaction_id = $1 AND a.account_id = t.account_id AND a.user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		userID,
		m.AccountID,
		m.CategoryID,
		m.Date,
		m.Amount,
		m.Payee,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransactions(ctx context.Context, transactionIDs []string, userID string) (int64, error) {
	if len(transactionIDs) == 0 {
		return 0, nil
	}
	query := `
		DELETE FROM transactions t
		USING accounts a
		WHERE t.transaction_id = ANY($1) AND a.account_id = t.account_id AND a.user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionIDs, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	return tag.RowsAffected(), nil
}
