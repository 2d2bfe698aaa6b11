package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// SupplierService handles the tenant's external providers.
type SupplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(sr portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &SupplierService{supplierRepo: sr}
}

var _ portssvc.SupplierSvcFacade = (*SupplierService)(nil)

func (s *SupplierService) ListSuppliers(ctx context.Context, authCtx domain.AuthContext) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx, authCtx.FuneralHomeID, nil)
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, authCtx domain.AuthContext, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, authCtx.FuneralHomeID, supplierID)
}

func (s *SupplierService) CreateSupplier(ctx context.Context, authCtx domain.AuthContext, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return nil, err
	}

	rut, err := normalizeOptionalRUT(req.RUT)
	if err != nil {
		return nil, err
	}

	supplier := domain.Supplier{
		SupplierID:    uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		Nombre:        req.Nombre,
		RUT:           rut,
		Categoria:     req.Categoria,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		Activo:        true,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("nombre", req.Nombre))
		return nil, err
	}
	return &supplier, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, authCtx domain.AuthContext, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, authCtx.FuneralHomeID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		supplier.Nombre = *req.Nombre
	}
	if req.RUT != nil {
		rut, err := normalizeOptionalRUT(req.RUT)
		if err != nil {
			return nil, err
		}
		supplier.RUT = rut
	}
	if req.Categoria != nil {
		supplier.Categoria = *req.Categoria
	}
	if req.ContactName != nil {
		supplier.ContactName = req.ContactName
	}
	if req.ContactPhone != nil {
		supplier.ContactPhone = req.ContactPhone
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = req.ContactEmail
	}
	if req.Activo != nil {
		supplier.Activo = *req.Activo
	}
	Touch(&supplier.AuditFields, authCtx.UserID, time.Now())

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, authCtx domain.AuthContext, supplierID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return err
	}
	return s.supplierRepo.DeleteSupplier(ctx, authCtx.FuneralHomeID, supplierID)
}
