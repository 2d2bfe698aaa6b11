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

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, funeral_home_id, nombre, rut, categoria,
	contact_name, contact_phone, contact_email, activo,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.FuneralHomeID,
		&s.Nombre,
		&s.RUT,
		&s.Categoria,
		&s.ContactName,
		&s.ContactPhone,
		&s.ContactEmail,
		&s.Activo,
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

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, funeral_home_id, nombre, rut, categoria,
		                       contact_name, contact_phone, contact_email, activo,
		                       created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID, supplier.FuneralHomeID, supplier.Nombre, supplier.RUT, supplier.Categoria,
		supplier.ContactName, supplier.ContactPhone, supplier.ContactEmail, supplier.Activo,
		supplier.CreatedAt, supplier.CreatedBy, supplier.LastUpdatedAt, supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, funeralHomeID, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE funeral_home_id = $1 AND supplier_id = $2;`
	s, err := scanSupplier(r.Pool.QueryRow(ctx, query, funeralHomeID, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return s, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, funeralHomeID string, buscar *string) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE funeral_home_id = $1`
	args := []any{funeralHomeID}
	if buscar != nil {
		args = append(args, "%"+*buscar+"%")
		query += fmt.Sprintf(" AND (nombre ILIKE $%d OR categoria ILIKE $%d)", len(args), len(args))
	}
	query += ` ORDER BY nombre;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *s)
	}
	return suppliers, rows.Err()
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET nombre = $3, rut = $4, categoria = $5,
		    contact_name = $6, contact_phone = $7, contact_email = $8, activo = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE funeral_home_id = $1 AND supplier_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		supplier.FuneralHomeID, supplier.SupplierID,
		supplier.Nombre, supplier.RUT, supplier.Categoria,
		supplier.ContactName, supplier.ContactPhone, supplier.ContactEmail, supplier.Activo,
		supplier.LastUpdatedAt, supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, funeralHomeID, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE funeral_home_id = $1 AND supplier_id = $2;`, funeralHomeID, supplierID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("no se puede eliminar: proveedor con gastos asociados", err)
		}
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
