package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
)

// PgxReportingRepository fetches tenant-wide raw rows; the reporting service
// reduces them in-process on every request.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func dateWindow(column string, desde, hasta *time.Time, args *[]any) string {
	clause := ""
	if desde != nil {
		*args = append(*args, *desde)
		clause += fmt.Sprintf(" AND %s >= $%d", column, len(*args))
	}
	if hasta != nil {
		*args = append(*args, *hasta)
		clause += fmt.Sprintf(" AND %s < $%d + interval '1 day'", column, len(*args))
	}
	return clause
}

func (r *PgxReportingRepository) ListTenantServices(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Service, error) {
	args := []any{funeralHomeID}
	query := `SELECT ` + serviceColumns + ` FROM services WHERE funeral_home_id = $1` +
		dateWindow("created_at", desde, hasta, &args) +
		` ORDER BY numero DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, *s)
	}
	return services, rows.Err()
}

func (r *PgxReportingRepository) ListTenantTransactions(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Transaction, error) {
	args := []any{funeralHomeID}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE funeral_home_id = $1` +
		dateWindow("created_at", desde, hasta, &args) +
		` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant transactions: %w", err)
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

func (r *PgxReportingRepository) ListTenantExpenses(ctx context.Context, funeralHomeID string, desde, hasta *time.Time) ([]domain.Expense, error) {
	args := []any{funeralHomeID}
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE funeral_home_id = $1` +
		dateWindow("fecha", desde, hasta, &args) +
		` ORDER BY fecha DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

func (r *PgxReportingRepository) CountQuotasByStatus(ctx context.Context, funeralHomeID string, estado domain.QuotaStatus) (int, error) {
	query := `SELECT COUNT(*) FROM mortuary_quotas WHERE funeral_home_id = $1 AND estado = $2;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, funeralHomeID, estado).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quotas: %w", err)
	}
	return count, nil
}
