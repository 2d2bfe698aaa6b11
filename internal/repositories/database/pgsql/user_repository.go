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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, funeral_home_id, email, full_name, role,
	password_hash, auth_provider, provider_user_id, estado_activo,
	created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.FuneralHomeID,
		&u.Email,
		&u.FullName,
		&u.Role,
		&u.PasswordHash,
		&u.AuthProvider,
		&u.ProviderUserID,
		&u.EstadoActivo,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	u, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`
	u, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	u, err := scanUser(r.Pool.QueryRow(ctx, query, authProvider, providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	return u, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, funeralHomeID string, includeInactive bool) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE funeral_home_id = $1`
	if !includeInactive {
		query += ` AND estado_activo = TRUE`
	}
	query += ` ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query, funeralHomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, funeral_home_id, email, full_name, role,
		                   password_hash, auth_provider, provider_user_id, estado_activo,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID, user.FuneralHomeID, user.Email, user.FullName, user.Role,
		user.PasswordHash, user.AuthProvider, user.ProviderUserID, user.EstadoActivo,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewValidationFailedError("email ya registrado", err)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, role = $3, password_hash = $4, estado_activo = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID, user.FullName, user.Role, user.PasswordHash, user.EstadoActivo,
		user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserInactive(ctx context.Context, funeralHomeID, userID, updatedBy string) error {
	query := `
		UPDATE users
		SET estado_activo = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE funeral_home_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, funeralHomeID, userID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
