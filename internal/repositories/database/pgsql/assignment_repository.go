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

type PgxAssignmentRepository struct {
	BaseRepository
}

func newPgxAssignmentRepository(db *pgxpool.Pool) portsrepo.AssignmentRepositoryFacade {
	return &PgxAssignmentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

const assignmentColumns = `assignment_id, service_id, collaborator_id, funeral_home_id,
	rol, extra_pay_type, extra_pay_amount,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAssignment(row pgx.Row) (*domain.ServiceAssignment, error) {
	var a domain.ServiceAssignment
	err := row.Scan(
		&a.AssignmentID,
		&a.ServiceID,
		&a.CollaboratorID,
		&a.FuneralHomeID,
		&a.Rol,
		&a.ExtraPayType,
		&a.ExtraPayAmount,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxAssignmentRepository) ListAssignmentsByService(ctx context.Context, funeralHomeID, serviceID string) ([]domain.ServiceAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM service_assignments
		WHERE funeral_home_id = $1 AND service_id = $2
		ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, funeralHomeID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	assignments := []domain.ServiceAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}

func (r *PgxAssignmentRepository) ListAssignmentsForMonth(ctx context.Context, funeralHomeID string, year, month int) ([]domain.ServiceAssignment, error) {
	query := `SELECT ` + qualifyAssignmentColumns("a") + `
		FROM service_assignments a
		JOIN services s ON s.service_id = a.service_id
		WHERE a.funeral_home_id = $1
		  AND EXTRACT(YEAR FROM s.created_at) = $2
		  AND EXTRACT(MONTH FROM s.created_at) = $3
		ORDER BY a.created_at;`
	rows, err := r.Pool.Query(ctx, query, funeralHomeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query month assignments: %w", err)
	}
	defer rows.Close()

	assignments := []domain.ServiceAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}

func qualifyAssignmentColumns(alias string) string {
	return alias + `.assignment_id, ` + alias + `.service_id, ` + alias + `.collaborator_id, ` + alias + `.funeral_home_id,
	` + alias + `.rol, ` + alias + `.extra_pay_type, ` + alias + `.extra_pay_amount,
	` + alias + `.created_at, ` + alias + `.created_by, ` + alias + `.last_updated_at, ` + alias + `.last_updated_by`
}

func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.ServiceAssignment) error {
	query := `
		INSERT INTO service_assignments (assignment_id, service_id, collaborator_id, funeral_home_id,
		                                 rol, extra_pay_type, extra_pay_amount,
		                                 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		assignment.AssignmentID, assignment.ServiceID, assignment.CollaboratorID, assignment.FuneralHomeID,
		assignment.Rol, assignment.ExtraPayType, assignment.ExtraPayAmount,
		assignment.CreatedAt, assignment.CreatedBy, assignment.LastUpdatedAt, assignment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation, collaborator already assigned
				return apperrors.NewValidationFailedError("colaborador ya asignado a este servicio", err)
			case "23503": // foreign_key_violation
				return apperrors.NewValidationFailedError("servicio o colaborador inexistente", err)
			}
		}
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	return nil
}

func (r *PgxAssignmentRepository) DeleteAssignment(ctx context.Context, funeralHomeID, assignmentID string) error {
	query := `DELETE FROM service_assignments WHERE funeral_home_id = $1 AND assignment_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, funeralHomeID, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment %s: %w", assignmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
