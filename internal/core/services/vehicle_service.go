package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// VehicleService handles the tenant's vehicle fleet.
type VehicleService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
	branchRepo  portsrepo.BranchRepositoryFacade
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vr portsrepo.VehicleRepositoryFacade, br portsrepo.BranchRepositoryFacade) portssvc.VehicleSvcFacade {
	return &VehicleService{vehicleRepo: vr, branchRepo: br}
}

var _ portssvc.VehicleSvcFacade = (*VehicleService)(nil)

// normalizePlate upper-cases the plate and strips separators so AB-CD-12 and
// abcd12 land on the same row.
func normalizePlate(patente string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(patente))
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	return strings.ReplaceAll(cleaned, " ", "")
}

func (s *VehicleService) ListVehicles(ctx context.Context, authCtx domain.AuthContext) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListVehicles(ctx, authCtx.FuneralHomeID, nil)
}

func (s *VehicleService) GetVehicleByID(ctx context.Context, authCtx domain.AuthContext, vehicleID string) (*domain.Vehicle, error) {
	return s.vehicleRepo.FindVehicleByID(ctx, authCtx.FuneralHomeID, vehicleID)
}

func (s *VehicleService) CreateVehicle(ctx context.Context, authCtx domain.AuthContext, req dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return nil, err
	}

	patente := normalizePlate(req.Patente)
	if patente == "" {
		return nil, apperrors.NewValidationFailedError("la patente es obligatoria", nil)
	}
	if req.BranchID != nil {
		if _, err := s.branchRepo.FindBranchByID(ctx, authCtx.FuneralHomeID, *req.BranchID); err != nil {
			return nil, err
		}
	}

	vehicle := domain.Vehicle{
		VehicleID:     uuid.NewString(),
		FuneralHomeID: authCtx.FuneralHomeID,
		BranchID:      req.BranchID,
		Patente:       patente,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Anio:          req.Anio,
		Activo:        true,
		AuditFields:   NewAudit(authCtx.UserID, time.Now()),
	}
	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		s.LogError(ctx, err, "Failed to save vehicle", slog.String("patente", patente))
		return nil, err
	}
	s.LogInfo(ctx, "Vehicle registered", slog.String("vehicle_id", vehicle.VehicleID))
	return &vehicle, nil
}

func (s *VehicleService) UpdateVehicle(ctx context.Context, authCtx domain.AuthContext, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, authCtx.FuneralHomeID, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.FindBranchByID(ctx, authCtx.FuneralHomeID, *req.BranchID); err != nil {
			return nil, err
		}
		vehicle.BranchID = req.BranchID
	}
	if req.Patente != nil {
		patente := normalizePlate(*req.Patente)
		if patente == "" {
			return nil, apperrors.NewValidationFailedError("la patente es obligatoria", nil)
		}
		vehicle.Patente = patente
	}
	if req.Marca != nil {
		vehicle.Marca = *req.Marca
	}
	if req.Modelo != nil {
		vehicle.Modelo = *req.Modelo
	}
	if req.Anio != nil {
		vehicle.Anio = req.Anio
	}
	if req.Activo != nil {
		vehicle.Activo = *req.Activo
	}
	Touch(&vehicle.AuditFields, authCtx.UserID, time.Now())

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		s.LogError(ctx, err, "Failed to update vehicle", slog.String("vehicle_id", vehicleID))
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, authCtx domain.AuthContext, vehicleID string) error {
	if err := s.RequireRole(authCtx, domain.RoleAdmin, domain.RoleOperaciones); err != nil {
		return err
	}
	return s.vehicleRepo.DeleteVehicle(ctx, authCtx.FuneralHomeID, vehicleID)
}
