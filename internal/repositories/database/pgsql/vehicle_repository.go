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

type PgxVehicleRepository struct {
	BaseRepository
}

func newPgxVehicleRepository(db *pgxpool.Pool) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

const vehicleColumns = `vehicle_id, funeral_home_id, branch_id, patente, marca, modelo, anio, activo,
	created_at, created_by, last_updated_at, last_updated_by`

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(
		&v.VehicleID,
		&v.FuneralHomeID,
		&v.BranchID,
		&v.Patente,
		&v.Marca,
		&v.Modelo,
		&v.Anio,
		&v.Activo,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_id, funeral_home_id, branch_id, patente, marca, modelo, anio, activo,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID, vehicle.FuneralHomeID, vehicle.BranchID, vehicle.Patente,
		vehicle.Marca, vehicle.Modelo, vehicle.Anio, vehicle.Activo,
		vehicle.CreatedAt, vehicle.CreatedBy, vehicle.LastUpdatedAt, vehicle.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (funeral_home_id, patente)
			return apperrors.NewValidationFailedError("patente ya registrada", err)
		}
		return fmt.Errorf("failed to save vehicle: %w", err)
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, funeralHomeID, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE funeral_home_id = $1 AND vehicle_id = $2;`
	v, err := scanVehicle(r.Pool.QueryRow(ctx, query, funeralHomeID, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	return v, nil
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context, funeralHomeID string, branchID *string) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}
	if branchID != nil {
		args = append(args, *branchID)
		query += fmt.Sprintf(" AND branch_id = $%d", len(args))
	}
	query += ` ORDER BY patente;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET branch_id = $3, patente = $4, marca = $5, modelo = $6, anio = $7, activo = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE funeral_home_id = $1 AND vehicle_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		vehicle.FuneralHomeID, vehicle.VehicleID,
		vehicle.BranchID, vehicle.Patente, vehicle.Marca, vehicle.Modelo, vehicle.Anio, vehicle.Activo,
		vehicle.LastUpdatedAt, vehicle.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewValidationFailedError("patente ya registrada", err)
		}
		return fmt.Errorf("failed to update vehicle %s: %w", vehicle.VehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, funeralHomeID, vehicleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vehicles WHERE funeral_home_id = $1 AND vehicle_id = $2;`, funeralHomeID, vehicleID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("no se puede eliminar: vehiculo en uso por servicios", err)
		}
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
