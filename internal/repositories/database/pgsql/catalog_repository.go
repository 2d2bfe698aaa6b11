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

// PgxCatalogRepository covers plans, coffin/urn products, cemeteries and
// rooms. Hard deletes rely on FK constraints; a violation means a service
// still references the entry and comes back as a validation error.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(db *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

func translateCatalogDeleteError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
		return apperrors.NewValidationFailedError("no se puede eliminar: "+entity+" en uso por servicios", err)
	}
	return err
}

// --- Plans ---

func (r *PgxCatalogRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	query := `
		INSERT INTO plans (plan_id, funeral_home_id, nombre, descripcion, precio, activo,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		plan.PlanID, plan.FuneralHomeID, plan.Nombre, plan.Descripcion, plan.Precio, plan.Activo,
		plan.CreatedAt, plan.CreatedBy, plan.LastUpdatedAt, plan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) FindPlanByID(ctx context.Context, funeralHomeID, planID string) (*domain.Plan, error) {
	query := `
		SELECT plan_id, funeral_home_id, nombre, descripcion, precio, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM plans WHERE funeral_home_id = $1 AND plan_id = $2;
	`
	var p domain.Plan
	err := r.Pool.QueryRow(ctx, query, funeralHomeID, planID).Scan(
		&p.PlanID, &p.FuneralHomeID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Activo,
		&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan %s: %w", planID, err)
	}
	return &p, nil
}

func (r *PgxCatalogRepository) ListPlans(ctx context.Context, funeralHomeID string, includeInactive bool) ([]domain.Plan, error) {
	query := `
		SELECT plan_id, funeral_home_id, nombre, descripcion, precio, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM plans WHERE funeral_home_id = $1`
	if !includeInactive {
		query += ` AND activo = TRUE`
	}
	query += ` ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query, funeralHomeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		var p domain.Plan
		err := rows.Scan(
			&p.PlanID, &p.FuneralHomeID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Activo,
			&p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *PgxCatalogRepository) UpdatePlan(ctx context.Context, plan domain.Plan) error {
	query := `
		UPDATE plans
		SET nombre = $3, descripcion = $4, precio = $5, activo = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE funeral_home_id = $1 AND plan_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		plan.FuneralHomeID, plan.PlanID,
		plan.Nombre, plan.Descripcion, plan.Precio, plan.Activo,
		plan.LastUpdatedAt, plan.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update plan %s: %w", plan.PlanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) DeletePlan(ctx context.Context, funeralHomeID, planID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM plans WHERE funeral_home_id = $1 AND plan_id = $2;`, funeralHomeID, planID)
	if err != nil {
		return translateCatalogDeleteError(fmt.Errorf("failed to delete plan %s: %w", planID, err), "plan")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Coffins and urns ---

func (r *PgxCatalogRepository) SaveCoffinUrn(ctx context.Context, item domain.CoffinUrn) error {
	query := `
		INSERT INTO coffin_urns (coffin_urn_id, funeral_home_id, tipo, modelo, material, precio, activo,
		                         created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.CoffinUrnID, item.FuneralHomeID, item.Tipo, item.Modelo, item.Material, item.Precio, item.Activo,
		item.CreatedAt, item.CreatedBy, item.LastUpdatedAt, item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save coffin/urn: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) FindCoffinUrnByID(ctx context.Context, funeralHomeID, coffinUrnID string) (*domain.CoffinUrn, error) {
	query := `
		SELECT coffin_urn_id, funeral_home_id, tipo, modelo, material, precio, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM coffin_urns WHERE funeral_home_id = $1 AND coffin_urn_id = $2;
	`
	var c domain.CoffinUrn
	err := r.Pool.QueryRow(ctx, query, funeralHomeID, coffinUrnID).Scan(
		&c.CoffinUrnID, &c.FuneralHomeID, &c.Tipo, &c.Modelo, &c.Material, &c.Precio, &c.Activo,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find coffin/urn %s: %w", coffinUrnID, err)
	}
	return &c, nil
}

func (r *PgxCatalogRepository) ListCoffinUrns(ctx context.Context, funeralHomeID string, tipo *domain.CoffinUrnType) ([]domain.CoffinUrn, error) {
	query := `
		SELECT coffin_urn_id, funeral_home_id, tipo, modelo, material, precio, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM coffin_urns WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}
	if tipo != nil {
		args = append(args, *tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	query += ` ORDER BY modelo;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query coffin/urns: %w", err)
	}
	defer rows.Close()

	items := []domain.CoffinUrn{}
	for rows.Next() {
		var c domain.CoffinUrn
		err := rows.Scan(
			&c.CoffinUrnID, &c.FuneralHomeID, &c.Tipo, &c.Modelo, &c.Material, &c.Precio, &c.Activo,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coffin/urn row: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *PgxCatalogRepository) UpdateCoffinUrn(ctx context.Context, item domain.CoffinUrn) error {
	query := `
		UPDATE coffin_urns
		SET tipo = $3, modelo = $4, material = $5, precio = $6, activo = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE funeral_home_id = $1 AND coffin_urn_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.FuneralHomeID, item.CoffinUrnID,
		item.Tipo, item.Modelo, item.Material, item.Precio, item.Activo,
		item.LastUpdatedAt, item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update coffin/urn %s: %w", item.CoffinUrnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) DeleteCoffinUrn(ctx context.Context, funeralHomeID, coffinUrnID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM coffin_urns WHERE funeral_home_id = $1 AND coffin_urn_id = $2;`, funeralHomeID, coffinUrnID)
	if err != nil {
		return translateCatalogDeleteError(fmt.Errorf("failed to delete coffin/urn %s: %w", coffinUrnID, err), "producto")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Cemeteries and crematoriums ---

func (r *PgxCatalogRepository) SaveCemetery(ctx context.Context, site domain.CemeteryCrematorium) error {
	query := `
		INSERT INTO cemeteries (cemetery_id, funeral_home_id, tipo, nombre, comuna, direccion, activo,
		                        created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		site.CemeteryID, site.FuneralHomeID, site.Tipo, site.Nombre, site.Comuna, site.Direccion, site.Activo,
		site.CreatedAt, site.CreatedBy, site.LastUpdatedAt, site.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save cemetery: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) FindCemeteryByID(ctx context.Context, funeralHomeID, cemeteryID string) (*domain.CemeteryCrematorium, error) {
	query := `
		SELECT cemetery_id, funeral_home_id, tipo, nombre, comuna, direccion, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM cemeteries WHERE funeral_home_id = $1 AND cemetery_id = $2;
	`
	var c domain.CemeteryCrematorium
	err := r.Pool.QueryRow(ctx, query, funeralHomeID, cemeteryID).Scan(
		&c.CemeteryID, &c.FuneralHomeID, &c.Tipo, &c.Nombre, &c.Comuna, &c.Direccion, &c.Activo,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cemetery %s: %w", cemeteryID, err)
	}
	return &c, nil
}

func (r *PgxCatalogRepository) ListCemeteries(ctx context.Context, funeralHomeID string, tipo *domain.CemeteryType) ([]domain.CemeteryCrematorium, error) {
	query := `
		SELECT cemetery_id, funeral_home_id, tipo, nombre, comuna, direccion, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM cemeteries WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}
	if tipo != nil {
		args = append(args, *tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}
	query += ` ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cemeteries: %w", err)
	}
	defer rows.Close()

	sites := []domain.CemeteryCrematorium{}
	for rows.Next() {
		var c domain.CemeteryCrematorium
		err := rows.Scan(
			&c.CemeteryID, &c.FuneralHomeID, &c.Tipo, &c.Nombre, &c.Comuna, &c.Direccion, &c.Activo,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cemetery row: %w", err)
		}
		sites = append(sites, c)
	}
	return sites, rows.Err()
}

func (r *PgxCatalogRepository) UpdateCemetery(ctx context.Context, site domain.CemeteryCrematorium) error {
	query := `
		UPDATE cemeteries
		SET tipo = $3, nombre = $4, comuna = $5, direccion = $6, activo = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE funeral_home_id = $1 AND cemetery_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		site.FuneralHomeID, site.CemeteryID,
		site.Tipo, site.Nombre, site.Comuna, site.Direccion, site.Activo,
		site.LastUpdatedAt, site.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update cemetery %s: %w", site.CemeteryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) DeleteCemetery(ctx context.Context, funeralHomeID, cemeteryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cemeteries WHERE funeral_home_id = $1 AND cemetery_id = $2;`, funeralHomeID, cemeteryID)
	if err != nil {
		return translateCatalogDeleteError(fmt.Errorf("failed to delete cemetery %s: %w", cemeteryID, err), "cementerio")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Rooms ---

func (r *PgxCatalogRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	query := `
		INSERT INTO rooms (room_id, funeral_home_id, branch_id, nombre, capacidad, activo,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		room.RoomID, room.FuneralHomeID, room.BranchID, room.Nombre, room.Capacidad, room.Activo,
		room.CreatedAt, room.CreatedBy, room.LastUpdatedAt, room.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("sucursal inexistente", err)
		}
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func (r *PgxCatalogRepository) FindRoomByID(ctx context.Context, funeralHomeID, roomID string) (*domain.Room, error) {
	query := `
		SELECT room_id, funeral_home_id, branch_id, nombre, capacidad, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM rooms WHERE funeral_home_id = $1 AND room_id = $2;
	`
	var rm domain.Room
	err := r.Pool.QueryRow(ctx, query, funeralHomeID, roomID).Scan(
		&rm.RoomID, &rm.FuneralHomeID, &rm.BranchID, &rm.Nombre, &rm.Capacidad, &rm.Activo,
		&rm.CreatedAt, &rm.CreatedBy, &rm.LastUpdatedAt, &rm.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room %s: %w", roomID, err)
	}
	return &rm, nil
}

func (r *PgxCatalogRepository) ListRooms(ctx context.Context, funeralHomeID string, branchID *string) ([]domain.Room, error) {
	query := `
		SELECT room_id, funeral_home_id, branch_id, nombre, capacidad, activo,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM rooms WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}
	if branchID != nil {
		args = append(args, *branchID)
		query += fmt.Sprintf(" AND branch_id = $%d", len(args))
	}
	query += ` ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		var rm domain.Room
		err := rows.Scan(
			&rm.RoomID, &rm.FuneralHomeID, &rm.BranchID, &rm.Nombre, &rm.Capacidad, &rm.Activo,
			&rm.CreatedAt, &rm.CreatedBy, &rm.LastUpdatedAt, &rm.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *PgxCatalogRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	query := `
		UPDATE rooms
		SET nombre = $3, capacidad = $4, activo = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE funeral_home_id = $1 AND room_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		room.FuneralHomeID, room.RoomID,
		room.Nombre, room.Capacidad, room.Activo,
		room.LastUpdatedAt, room.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", room.RoomID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) DeleteRoom(ctx context.Context, funeralHomeID, roomID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rooms WHERE funeral_home_id = $1 AND room_id = $2;`, funeralHomeID, roomID)
	if err != nil {
		return translateCatalogDeleteError(fmt.Errorf("failed to delete room %s: %w", roomID, err), "sala")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
