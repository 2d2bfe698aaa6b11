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

type PgxFuneralHomeRepository struct {
	BaseRepository
}

func newPgxFuneralHomeRepository(db *pgxpool.Pool) portsrepo.FuneralHomeRepositoryFacade {
	return &PgxFuneralHomeRepository{BaseRepository{Pool: db}}
}

// Ensure PgxFuneralHomeRepository implements the facade
var _ portsrepo.FuneralHomeRepositoryFacade = (*PgxFuneralHomeRepository)(nil)

func (r *PgxFuneralHomeRepository) FindFuneralHomeByID(ctx context.Context, funeralHomeID string) (*domain.FuneralHome, error) {
	query := `
		SELECT funeral_home_id, legal_name, trade_name, rut, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM funeral_homes
		WHERE funeral_home_id = $1;
	`
	var home domain.FuneralHome
	err := r.Pool.QueryRow(ctx, query, funeralHomeID).Scan(
		&home.FuneralHomeID,
		&home.LegalName,
		&home.TradeName,
		&home.RUT,
		&home.IsActive,
		&home.CreatedAt,
		&home.CreatedBy,
		&home.LastUpdatedAt,
		&home.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find funeral home %s: %w", funeralHomeID, err)
	}
	return &home, nil
}

func (r *PgxFuneralHomeRepository) UpdateFuneralHome(ctx context.Context, home domain.FuneralHome) error {
	query := `
		UPDATE funeral_homes
		SET legal_name = $2, trade_name = $3, is_active = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE funeral_home_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		home.FuneralHomeID,
		home.LegalName,
		home.TradeName,
		home.IsActive,
		home.LastUpdatedAt,
		home.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update funeral home %s: %w", home.FuneralHomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CreateTenant provisions the funeral home, its main branch, the admin user
// and the admin's branch assignment in a single transaction. A duplicate
// tenant RUT or admin email surfaces as a validation error and leaves no rows
// behind.
func (r *PgxFuneralHomeRepository) CreateTenant(ctx context.Context, home domain.FuneralHome, branch domain.Branch, admin domain.User, assignment domain.UserBranch) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	homeQuery := `
		INSERT INTO funeral_homes (funeral_home_id, legal_name, trade_name, rut, is_active,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, homeQuery,
		home.FuneralHomeID, home.LegalName, home.TradeName, home.RUT, home.IsActive,
		home.CreatedAt, home.CreatedBy, home.LastUpdatedAt, home.LastUpdatedBy,
	)
	if err != nil {
		return translateSignupError(err)
	}

	branchQuery := `
		INSERT INTO branches (branch_id, funeral_home_id, name, address, phone, estado_activo,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, branchQuery,
		branch.BranchID, branch.FuneralHomeID, branch.Name, branch.Address, branch.Phone, branch.EstadoActivo,
		branch.CreatedAt, branch.CreatedBy, branch.LastUpdatedAt, branch.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to create main branch: %w", err)
	}

	userQuery := `
		INSERT INTO users (user_id, funeral_home_id, email, full_name, role,
		                   password_hash, auth_provider, provider_user_id, estado_activo,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, userQuery,
		admin.UserID, admin.FuneralHomeID, admin.Email, admin.FullName, admin.Role,
		admin.PasswordHash, admin.AuthProvider, admin.ProviderUserID, admin.EstadoActivo,
		admin.CreatedAt, admin.CreatedBy, admin.LastUpdatedAt, admin.LastUpdatedBy,
	)
	if err != nil {
		return translateSignupError(err)
	}

	assignQuery := `
		INSERT INTO user_branches (user_id, branch_id, assigned_at)
		VALUES ($1, $2, $3);
	`
	_, err = tx.Exec(ctx, assignQuery, assignment.UserID, assignment.BranchID, assignment.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to assign admin to main branch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func translateSignupError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		switch pgErr.ConstraintName {
		case "funeral_homes_rut_key":
			return apperrors.NewValidationFailedError("RUT de funeraria ya registrado", err)
		case "users_email_key":
			return apperrors.NewValidationFailedError("email ya registrado", err)
		}
		return apperrors.NewConflictError("signup conflicts with existing data", err)
	}
	return fmt.Errorf("failed to create tenant: %w", err)
}
