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

type PgxServiceRepository struct {
	BaseRepository
}

func newPgxServiceRepository(db *pgxpool.Pool) portsrepo.ServiceRepositoryFacade {
	return &PgxServiceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ServiceRepositoryFacade = (*PgxServiceRepository)(nil)

const serviceColumns = `service_id, funeral_home_id, branch_id, numero, tipo, estado,
	deceased_name, deceased_rut, death_date,
	responsible_name, responsible_rut, responsible_phone, responsible_email,
	plan_id, coffin_urn_id, cemetery_id, vehicle_id, room_id,
	total_final, descuento, notas,
	created_at, created_by, last_updated_at, last_updated_by`

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ServiceID,
		&s.FuneralHomeID,
		&s.BranchID,
		&s.Numero,
		&s.Tipo,
		&s.Estado,
		&s.DeceasedName,
		&s.DeceasedRUT,
		&s.DeathDate,
		&s.ResponsibleName,
		&s.ResponsibleRUT,
		&s.ResponsiblePhone,
		&s.ResponsibleEmail,
		&s.PlanID,
		&s.CoffinUrnID,
		&s.CemeteryID,
		&s.VehicleID,
		&s.RoomID,
		&s.TotalFinal,
		&s.Descuento,
		&s.Notas,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, funeralHomeID, serviceID string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE funeral_home_id = $1 AND service_id = $2;`
	s, err := scanService(r.Pool.QueryRow(ctx, query, funeralHomeID, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service %s: %w", serviceID, err)
	}
	return s, nil
}

func (r *PgxServiceRepository) ListServices(ctx context.Context, funeralHomeID string, filter domain.ServiceFilter) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}

	if filter.Estado != nil {
		args = append(args, *filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if filter.Tipo != nil {
		args = append(args, *filter.Tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		query += fmt.Sprintf(" AND branch_id = $%d", len(args))
	}
	if filter.Desde != nil {
		args = append(args, *filter.Desde)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.Hasta != nil {
		args = append(args, *filter.Hasta)
		query += fmt.Sprintf(" AND created_at < $%d + interval '1 day'", len(args))
	}
	if filter.Buscar != nil {
		args = append(args, "%"+*filter.Buscar+"%")
		query += fmt.Sprintf(" AND (deceased_name ILIKE $%d OR responsible_name ILIKE $%d)", len(args), len(args))
	}
	query += ` ORDER BY numero DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
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

func (r *PgxServiceRepository) NextServiceNumber(ctx context.Context, funeralHomeID string) (int, error) {
	query := `SELECT COALESCE(MAX(numero), 0) + 1 FROM services WHERE funeral_home_id = $1;`
	var next int
	if err := r.Pool.QueryRow(ctx, query, funeralHomeID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next service number: %w", err)
	}
	return next, nil
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := `
		INSERT INTO services (service_id, funeral_home_id, branch_id, numero, tipo, estado,
		                      deceased_name, deceased_rut, death_date,
		                      responsible_name, responsible_rut, responsible_phone, responsible_email,
		                      plan_id, coffin_urn_id, cemetery_id, vehicle_id, room_id,
		                      total_final, descuento, notas,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := r.Pool.Exec(ctx, query,
		service.ServiceID, service.FuneralHomeID, service.BranchID, service.Numero, service.Tipo, service.Estado,
		service.DeceasedName, service.DeceasedRUT, service.DeathDate,
		service.ResponsibleName, service.ResponsibleRUT, service.ResponsiblePhone, service.ResponsibleEmail,
		service.PlanID, service.CoffinUrnID, service.CemeteryID, service.VehicleID, service.RoomID,
		service.TotalFinal, service.Descuento, service.Notas,
		service.CreatedAt, service.CreatedBy, service.LastUpdatedAt, service.LastUpdatedBy,
	)
	if err != nil {
		return translateServiceRefError(err)
	}
	return nil
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	query := `
		UPDATE services
		SET branch_id = $3, tipo = $4, estado = $5,
		    deceased_name = $6, deceased_rut = $7, death_date = $8,
		    responsible_name = $9, responsible_rut = $10, responsible_phone = $11, responsible_email = $12,
		    plan_id = $13, coffin_urn_id = $14, cemetery_id = $15, vehicle_id = $16, room_id = $17,
		    total_final = $18, descuento = $19, notas = $20,
		    last_updated_at = $21, last_updated_by = $22
		WHERE funeral_home_id = $1 AND service_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		service.FuneralHomeID, service.ServiceID,
		service.BranchID, service.Tipo, service.Estado,
		service.DeceasedName, service.DeceasedRUT, service.DeathDate,
		service.ResponsibleName, service.ResponsibleRUT, service.ResponsiblePhone, service.ResponsibleEmail,
		service.PlanID, service.CoffinUrnID, service.CemeteryID, service.VehicleID, service.RoomID,
		service.TotalFinal, service.Descuento, service.Notas,
		service.LastUpdatedAt, service.LastUpdatedBy,
	)
	if err != nil {
		return translateServiceRefError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxServiceRepository) DeleteService(ctx context.Context, funeralHomeID, serviceID string) error {
	query := `DELETE FROM services WHERE funeral_home_id = $1 AND service_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, funeralHomeID, serviceID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("no se puede eliminar: el servicio tiene registros asociados", err)
		}
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// translateServiceRefError maps FK violations on catalog references into
// validation errors so callers see a 400 instead of a 500.
func translateServiceRefError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
		return apperrors.NewValidationFailedError("referencia de catalogo invalida", err)
	}
	return fmt.Errorf("failed to persist service: %w", err)
}
