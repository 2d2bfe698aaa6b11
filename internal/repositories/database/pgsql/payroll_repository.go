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

type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(db *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const periodColumns = `payroll_period_id, funeral_home_id, anio, mes, estado, closed_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (*domain.PayrollPeriod, error) {
	var p domain.PayrollPeriod
	err := row.Scan(
		&p.PayrollPeriodID,
		&p.FuneralHomeID,
		&p.Anio,
		&p.Mes,
		&p.Estado,
		&p.ClosedAt,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const receiptColumns = `receipt_id, payroll_period_id, funeral_home_id, collaborator_id,
	collaborator_name, sueldo_base, extras, descuentos, total_liquido, issued_at`

func scanReceipt(row pgx.Row) (*domain.PaymentReceipt, error) {
	var rc domain.PaymentReceipt
	err := row.Scan(
		&rc.ReceiptID,
		&rc.PayrollPeriodID,
		&rc.FuneralHomeID,
		&rc.CollaboratorID,
		&rc.CollaboratorName,
		&rc.SueldoBase,
		&rc.Extras,
		&rc.Descuentos,
		&rc.TotalLiquido,
		&rc.IssuedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *PgxPayrollRepository) FindPeriodByID(ctx context.Context, funeralHomeID, periodID string) (*domain.PayrollPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE funeral_home_id = $1 AND payroll_period_id = $2;`
	p, err := scanPeriod(r.Pool.QueryRow(ctx, query, funeralHomeID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll period %s: %w", periodID, err)
	}
	return p, nil
}

func (r *PgxPayrollRepository) FindPeriodByMonth(ctx context.Context, funeralHomeID string, year, month int) (*domain.PayrollPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE funeral_home_id = $1 AND anio = $2 AND mes = $3;`
	p, err := scanPeriod(r.Pool.QueryRow(ctx, query, funeralHomeID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll period %d-%d: %w", year, month, err)
	}
	return p, nil
}

func (r *PgxPayrollRepository) ListPeriods(ctx context.Context, funeralHomeID string) ([]domain.PayrollPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE funeral_home_id = $1 ORDER BY anio DESC, mes DESC;`
	rows, err := r.Pool.Query(ctx, query, funeralHomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.PayrollPeriod{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period row: %w", err)
		}
		periods = append(periods, *p)
	}
	return periods, rows.Err()
}

func (r *PgxPayrollRepository) FindReceiptByID(ctx context.Context, funeralHomeID, receiptID string) (*domain.PaymentReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM payment_receipts WHERE funeral_home_id = $1 AND receipt_id = $2;`
	rc, err := scanReceipt(r.Pool.QueryRow(ctx, query, funeralHomeID, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptID, err)
	}
	return rc, nil
}

func (r *PgxPayrollRepository) ListReceiptsByPeriod(ctx context.Context, funeralHomeID, periodID string) ([]domain.PaymentReceipt, error) {
	query := `SELECT ` + receiptColumns + `
		FROM payment_receipts
		WHERE funeral_home_id = $1 AND payroll_period_id = $2
		ORDER BY collaborator_name;`
	rows, err := r.Pool.Query(ctx, query, funeralHomeID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	receipts := []domain.PaymentReceipt{}
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, *rc)
	}
	return receipts, rows.Err()
}

func (r *PgxPayrollRepository) SavePeriod(ctx context.Context, period domain.PayrollPeriod) error {
	query := `
		INSERT INTO payroll_periods (payroll_period_id, funeral_home_id, anio, mes, estado, closed_at,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		period.PayrollPeriodID, period.FuneralHomeID, period.Anio, period.Mes, period.Estado, period.ClosedAt,
		period.CreatedAt, period.CreatedBy, period.LastUpdatedAt, period.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (funeral_home_id, anio, mes)
			return apperrors.NewValidationFailedError("ya existe un periodo para ese mes", err)
		}
		return fmt.Errorf("failed to save payroll period: %w", err)
	}
	return nil
}

func (r *PgxPayrollRepository) UpdatePeriod(ctx context.Context, period domain.PayrollPeriod) error {
	query := `
		UPDATE payroll_periods
		SET estado = $3, closed_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE funeral_home_id = $1 AND payroll_period_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		period.FuneralHomeID, period.PayrollPeriodID,
		period.Estado, period.ClosedAt, period.LastUpdatedAt, period.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll period %s: %w", period.PayrollPeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceReceipts swaps the whole receipt batch of a period inside one
// transaction, so a failed regeneration never leaves a partial batch.
func (r *PgxPayrollRepository) ReplaceReceipts(ctx context.Context, funeralHomeID, periodID string, receipts []domain.PaymentReceipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `DELETE FROM payment_receipts WHERE funeral_home_id = $1 AND payroll_period_id = $2;`, funeralHomeID, periodID)
	if err != nil {
		return fmt.Errorf("failed to clear receipts: %w", err)
	}

	insert := `
		INSERT INTO payment_receipts (receipt_id, payroll_period_id, funeral_home_id, collaborator_id,
		                              collaborator_name, sueldo_base, extras, descuentos, total_liquido, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, rc := range receipts {
		_, err = tx.Exec(ctx, insert,
			rc.ReceiptID, rc.PayrollPeriodID, rc.FuneralHomeID, rc.CollaboratorID,
			rc.CollaboratorName, rc.SueldoBase, rc.Extras, rc.Descuentos, rc.TotalLiquido, rc.IssuedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert receipt for %s: %w", rc.CollaboratorID, err)
		}
	}

	return r.Commit(ctx, tx)
}
