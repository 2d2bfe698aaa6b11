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

type PgxQuotaRepository struct {
	BaseRepository
}

func newPgxQuotaRepository(db *pgxpool.Pool) portsrepo.QuotaRepositoryFacade {
	return &PgxQuotaRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.QuotaRepositoryFacade = (*PgxQuotaRepository)(nil)

const quotaColumns = `quota_id, funeral_home_id, service_id, institucion, monto, estado,
	filed_at, resolved_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanQuota(row pgx.Row) (*domain.MortuaryQuota, error) {
	var q domain.MortuaryQuota
	err := row.Scan(
		&q.QuotaID,
		&q.FuneralHomeID,
		&q.ServiceID,
		&q.Institucion,
		&q.Monto,
		&q.Estado,
		&q.FiledAt,
		&q.ResolvedAt,
		&q.CreatedAt,
		&q.CreatedBy,
		&q.LastUpdatedAt,
		&q.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PgxQuotaRepository) FindQuotaByID(ctx context.Context, funeralHomeID, quotaID string) (*domain.MortuaryQuota, error) {
	query := `SELECT ` + quotaColumns + ` FROM mortuary_quotas WHERE funeral_home_id = $1 AND quota_id = $2;`
	q, err := scanQuota(r.Pool.QueryRow(ctx, query, funeralHomeID, quotaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quota %s: %w", quotaID, err)
	}
	return q, nil
}

func (r *PgxQuotaRepository) ListQuotas(ctx context.Context, funeralHomeID string, filter domain.QuotaFilter) ([]domain.MortuaryQuota, error) {
	query := `SELECT ` + quotaColumns + ` FROM mortuary_quotas WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}
	if filter.ServiceID != nil {
		args = append(args, *filter.ServiceID)
		query += fmt.Sprintf(" AND service_id = $%d", len(args))
	}
	if filter.Estado != nil {
		args = append(args, *filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotas: %w", err)
	}
	defer rows.Close()

	quotas := []domain.MortuaryQuota{}
	for rows.Next() {
		q, err := scanQuota(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quota row: %w", err)
		}
		quotas = append(quotas, *q)
	}
	return quotas, rows.Err()
}

func (r *PgxQuotaRepository) SaveQuota(ctx context.Context, quota domain.MortuaryQuota) error {
	query := `
		INSERT INTO mortuary_quotas (quota_id, funeral_home_id, service_id, institucion, monto, estado,
		                             filed_at, resolved_at,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		quota.QuotaID, quota.FuneralHomeID, quota.ServiceID, quota.Institucion, quota.Monto, quota.Estado,
		quota.FiledAt, quota.ResolvedAt,
		quota.CreatedAt, quota.CreatedBy, quota.LastUpdatedAt, quota.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("servicio inexistente", err)
		}
		return fmt.Errorf("failed to save quota: %w", err)
	}
	return nil
}

func (r *PgxQuotaRepository) UpdateQuota(ctx context.Context, quota domain.MortuaryQuota) error {
	query := `
		UPDATE mortuary_quotas
		SET institucion = $3, monto = $4, estado = $5, filed_at = $6, resolved_at = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE funeral_home_id = $1 AND quota_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		quota.FuneralHomeID, quota.QuotaID,
		quota.Institucion, quota.Monto, quota.Estado, quota.FiledAt, quota.ResolvedAt,
		quota.LastUpdatedAt, quota.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update quota %s: %w", quota.QuotaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxQuotaRepository) DeleteQuota(ctx context.Context, funeralHomeID, quotaID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM mortuary_quotas WHERE funeral_home_id = $1 AND quota_id = $2;`, funeralHomeID, quotaID)
	if err != nil {
		return fmt.Errorf("failed to delete quota %s: %w", quotaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
