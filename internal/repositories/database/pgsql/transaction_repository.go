package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, funeral_home_id, service_id, metodo, estado,
	monto, paid_at, referencia,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.FuneralHomeID,
		&t.ServiceID,
		&t.Metodo,
		&t.Estado,
		&t.Monto,
		&t.PaidAt,
		&t.Referencia,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, funeralHomeID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE funeral_home_id = $1 AND transaction_id = $2;`
	t, err := scanTransaction(r.Pool.QueryRow(ctx, query, funeralHomeID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return t, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, funeralHomeID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}

	if filter.ServiceID != nil {
		args = append(args, *filter.ServiceID)
		query += fmt.Sprintf(" AND service_id = $%d", len(args))
	}
	if filter.Estado != nil {
		args = append(args, *filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if filter.Metodo != nil {
		args = append(args, *filter.Metodo)
		query += fmt.Sprintf(" AND metodo = $%d", len(args))
	}
	if filter.Desde != nil {
		args = append(args, *filter.Desde)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.Hasta != nil {
		args = append(args, *filter.Hasta)
		query += fmt.Sprintf(" AND created_at < $%d + interval '1 day'", len(args))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, funeral_home_id, service_id, metodo, estado,
		                          monto, paid_at, referencia,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID, txn.FuneralHomeID, txn.ServiceID, txn.Metodo, txn.Estado,
		txn.Monto, txn.PaidAt, txn.Referencia,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("servicio inexistente", err)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET metodo = $3, estado = $4, monto = $5, paid_at = $6, referencia = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE funeral_home_id = $1 AND transaction_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.FuneralHomeID, txn.TransactionID,
		txn.Metodo, txn.Estado, txn.Monto, txn.PaidAt, txn.Referencia,
		txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, funeralHomeID, transactionID string) error {
	query := `DELETE FROM transactions WHERE funeral_home_id = $1 AND transaction_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, funeralHomeID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
