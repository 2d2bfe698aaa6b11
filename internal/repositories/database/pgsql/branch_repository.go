package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
)

type PgxBranchRepository struct {
	BaseRepository
}

func newPgxBranchRepository(db *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchColumns = `branch_id, funeral_home_id, name, address, phone, estado_activo,
	created_at, created_by, last_updated_at, last_updated_by`

func scanBranch(row pgx.Row) (*domain.Branch, error) {
	var b domain.Branch
	err := row.Scan(
		&b.BranchID,
		&b.FuneralHomeID,
		&b.Name,
		&b.Address,
		&b.Phone,
		&b.EstadoActivo,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, funeralHomeID, branchID string) (*domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE funeral_home_id = $1 AND branch_id = $2;`
	b, err := scanBranch(r.Pool.QueryRow(ctx, query, funeralHomeID, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find branch %s: %w", branchID, err)
	}
	return b, nil
}

func (r *PgxBranchRepository) ListBranches(ctx context.Context, funeralHomeID string, includeInactive bool) ([]domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE funeral_home_id = $1`
	if !includeInactive {
		query += ` AND estado_activo = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, funeralHomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch row: %w", err)
		}
		branches = append(branches, *b)
	}
	return branches, rows.Err()
}

func (r *PgxBranchRepository) ListBranchIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT branch_id FROM user_branches WHERE user_id = $1 ORDER BY branch_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch assignments: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan branch assignment: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		INSERT INTO branches (branch_id, funeral_home_id, name, address, phone, estado_activo,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		branch.BranchID, branch.FuneralHomeID, branch.Name, branch.Address, branch.Phone, branch.EstadoActivo,
		branch.CreatedAt, branch.CreatedBy, branch.LastUpdatedAt, branch.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save branch: %w", err)
	}
	return nil
}

func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		UPDATE branches
		SET name = $3, address = $4, phone = $5, estado_activo = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE funeral_home_id = $1 AND branch_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		branch.FuneralHomeID, branch.BranchID,
		branch.Name, branch.Address, branch.Phone, branch.EstadoActivo,
		branch.LastUpdatedAt, branch.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update branch %s: %w", branch.BranchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBranchRepository) MarkBranchInactive(ctx context.Context, funeralHomeID, branchID, updatedBy string) error {
	query := `
		UPDATE branches
		SET estado_activo = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE funeral_home_id = $1 AND branch_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, funeralHomeID, branchID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate branch %s: %w", branchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBranchRepository) AssignUserToBranch(ctx context.Context, assignment domain.UserBranch) error {
	query := `
		INSERT INTO user_branches (user_id, branch_id, assigned_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, branch_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, assignment.UserID, assignment.BranchID, assignment.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to assign user to branch: %w", err)
	}
	return nil
}

func (r *PgxBranchRepository) RemoveUserFromBranch(ctx context.Context, userID, branchID string) error {
	query := `DELETE FROM user_branches WHERE user_id = $1 AND branch_id = $2;`
	_, err := r.Pool.Exec(ctx, query, userID, branchID)
	if err != nil {
		return fmt.Errorf("failed to remove user from branch: %w", err)
	}
	return nil
}
