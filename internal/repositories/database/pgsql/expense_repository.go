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

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, funeral_home_id, branch_id, service_id, supplier_id,
	categoria, monto, fecha, estado_factura, descripcion,
	created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var e domain.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.FuneralHomeID,
		&e.BranchID,
		&e.ServiceID,
		&e.SupplierID,
		&e.Categoria,
		&e.Monto,
		&e.Fecha,
		&e.EstadoFactura,
		&e.Descripcion,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, funeralHomeID, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE funeral_home_id = $1 AND expense_id = $2;`
	e, err := scanExpense(r.Pool.QueryRow(ctx, query, funeralHomeID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, funeralHomeID string, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}

	if filter.Categoria != nil {
		args = append(args, *filter.Categoria)
		query += fmt.Sprintf(" AND categoria = $%d", len(args))
	}
	if filter.SupplierID != nil {
		args = append(args, *filter.SupplierID)
		query += fmt.Sprintf(" AND supplier_id = $%d", len(args))
	}
	if filter.ServiceID != nil {
		args = append(args, *filter.ServiceID)
		query += fmt.Sprintf(" AND service_id = $%d", len(args))
	}
	if filter.EstadoFactura != nil {
		args = append(args, *filter.EstadoFactura)
		query += fmt.Sprintf(" AND estado_factura = $%d", len(args))
	}
	if filter.Desde != nil {
		args = append(args, *filter.Desde)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if filter.Hasta != nil {
		args = append(args, *filter.Hasta)
		query += fmt.Sprintf(" AND fecha <= $%d", len(args))
	}
	query += ` ORDER BY fecha DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
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

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, funeral_home_id, branch_id, service_id, supplier_id,
		                      categoria, monto, fecha, estado_factura, descripcion,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID, expense.FuneralHomeID, expense.BranchID, expense.ServiceID, expense.SupplierID,
		expense.Categoria, expense.Monto, expense.Fecha, expense.EstadoFactura, expense.Descripcion,
		expense.CreatedAt, expense.CreatedBy, expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("referencia invalida en gasto", err)
		}
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET branch_id = $3, service_id = $4, supplier_id = $5,
		    categoria = $6, monto = $7, fecha = $8, estado_factura = $9, descripcion = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE funeral_home_id = $1 AND expense_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.FuneralHomeID, expense.ExpenseID,
		expense.BranchID, expense.ServiceID, expense.SupplierID,
		expense.Categoria, expense.Monto, expense.Fecha, expense.EstadoFactura, expense.Descripcion,
		expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, funeralHomeID, expenseID string) error {
	query := `DELETE FROM expenses WHERE funeral_home_id = $1 AND expense_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, funeralHomeID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
