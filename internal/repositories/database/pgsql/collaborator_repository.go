package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
)

type PgxCollaboratorRepository struct {
	BaseRepository
}

func newPgxCollaboratorRepository(db *pgxpool.Pool) portsrepo.CollaboratorRepositoryFacade {
	return &PgxCollaboratorRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CollaboratorRepositoryFacade = (*PgxCollaboratorRepository)(nil)

const collaboratorColumns = `collaborator_id, funeral_home_id, branch_id, full_name, rut,
	email, phone, tipo_contrato, sueldo_base, estado_activo,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCollaborator(row pgx.Row) (*domain.Collaborator, error) {
	var c domain.Collaborator
	err := row.Scan(
		&c.CollaboratorID,
		&c.FuneralHomeID,
		&c.BranchID,
		&c.FullName,
		&c.RUT,
		&c.Email,
		&c.Phone,
		&c.TipoContrato,
		&c.SueldoBase,
		&c.EstadoActivo,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCollaboratorRepository) FindCollaboratorByID(ctx context.Context, funeralHomeID, collaboratorID string) (*domain.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE funeral_home_id = $1 AND collaborator_id = $2;`
	c, err := scanCollaborator(r.Pool.QueryRow(ctx, query, funeralHomeID, collaboratorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collaborator %s: %w", collaboratorID, err)
	}
	return c, nil
}

func (r *PgxCollaboratorRepository) ListCollaborators(ctx context.Context, funeralHomeID string, filter domain.CollaboratorFilter) ([]domain.Collaborator, error) {
	query := `SELECT ` + collaboratorColumns + ` FROM collaborators WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}

	if !filter.IncludeInactive {
		query += ` AND estado_activo = TRUE`
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		query += fmt.Sprintf(" AND branch_id = $%d", len(args))
	}
	if filter.TipoContrato != nil {
		args = append(args, *filter.TipoContrato)
		query += fmt.Sprintf(" AND tipo_contrato = $%d", len(args))
	}
	if filter.Buscar != nil {
		args = append(args, "%"+*filter.Buscar+"%")
		query += fmt.Sprintf(" AND (full_name ILIKE $%d OR rut ILIKE $%d)", len(args), len(args))
	}
	query += ` ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collaborators: %w", err)
	}
	defer rows.Close()

	collaborators := []domain.Collaborator{}
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collaborator row: %w", err)
		}
		collaborators = append(collaborators, *c)
	}
	return collaborators, rows.Err()
}

func (r *PgxCollaboratorRepository) SaveCollaborator(ctx context.Context, collaborator domain.Collaborator) error {
	query := `
		INSERT INTO collaborators (collaborator_id, funeral_home_id, branch_id, full_name, rut,
		                           email, phone, tipo_contrato, sueldo_base, estado_activo,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		collaborator.CollaboratorID, collaborator.FuneralHomeID, collaborator.BranchID, collaborator.FullName, collaborator.RUT,
		collaborator.Email, collaborator.Phone, collaborator.TipoContrato, collaborator.SueldoBase, collaborator.EstadoActivo,
		collaborator.CreatedAt, collaborator.CreatedBy, collaborator.LastUpdatedAt, collaborator.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (funeral_home_id, rut)
			return apperrors.NewValidationFailedError("RUT ya registrado en esta funeraria", err)
		}
		return fmt.Errorf("failed to save collaborator: %w", err)
	}
	return nil
}

func (r *PgxCollaboratorRepository) UpdateCollaborator(ctx context.Context, collaborator domain.Collaborator) error {
	query := `
		UPDATE collaborators
		SET branch_id = $3, full_name = $4, email = $5, phone = $6,
		    tipo_contrato = $7, sueldo_base = $8, estado_activo = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE funeral_home_id = $1 AND collaborator_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		collaborator.FuneralHomeID, collaborator.CollaboratorID,
		collaborator.BranchID, collaborator.FullName, collaborator.Email, collaborator.Phone,
		collaborator.TipoContrato, collaborator.SueldoBase, collaborator.EstadoActivo,
		collaborator.LastUpdatedAt, collaborator.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update collaborator %s: %w", collaborator.CollaboratorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCollaboratorRepository) MarkCollaboratorInactive(ctx context.Context, funeralHomeID, collaboratorID, updatedBy string) error {
	query := `
		UPDATE collaborators
		SET estado_activo = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE funeral_home_id = $1 AND collaborator_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, funeralHomeID, collaboratorID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate collaborator %s: %w", collaboratorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
