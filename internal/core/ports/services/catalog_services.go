package services

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// CatalogSvcFacade defines CRUD over the tenant's plans, coffin/urn
// products, cemeteries and wake rooms. Reads are open to all roles;
// writes are restricted to admin. Deletes are hard but fail with a
// validation error while any service references the entry.
type CatalogSvcFacade interface {
	ListPlans(ctx context.Context, authCtx domain.AuthContext) ([]domain.Plan, error)
	GetPlanByID(ctx context.Context, authCtx domain.AuthContext, planID string) (*domain.Plan, error)
	CreatePlan(ctx context.Context, authCtx domain.AuthContext, req dto.CreatePlanRequest) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, authCtx domain.AuthContext, planID string, req dto.UpdatePlanRequest) (*domain.Plan, error)
	DeletePlan(ctx context.Context, authCtx domain.AuthContext, planID string) error

	ListCoffinUrns(ctx context.Context, authCtx domain.AuthContext) ([]domain.CoffinUrn, error)
	GetCoffinUrnByID(ctx context.Context, authCtx domain.AuthContext, coffinUrnID string) (*domain.CoffinUrn, error)
	CreateCoffinUrn(ctx context.Context, authCtx domain.AuthContext, req dto.CreateCoffinUrnRequest) (*domain.CoffinUrn, error)
	UpdateCoffinUrn(ctx context.Context, authCtx domain.AuthContext, coffinUrnID string, req dto.UpdateCoffinUrnRequest) (*domain.CoffinUrn, error)
	DeleteCoffinUrn(ctx context.Context, authCtx domain.AuthContext, coffinUrnID string) error

	ListCemeteries(ctx context.Context, authCtx domain.AuthContext) ([]domain.CemeteryCrematorium, error)
	GetCemeteryByID(ctx context.Context, authCtx domain.AuthContext, cemeteryID string) (*domain.CemeteryCrematorium, error)
	CreateCemetery(ctx context.Context, authCtx domain.AuthContext, req dto.CreateCemeteryRequest) (*domain.CemeteryCrematorium, error)
	UpdateCemetery(ctx context.Context, authCtx domain.AuthContext, cemeteryID string, req dto.UpdateCemeteryRequest) (*domain.CemeteryCrematorium, error)
	DeleteCemetery(ctx context.Context, authCtx domain.AuthContext, cemeteryID string) error

	ListRooms(ctx context.Context, authCtx domain.AuthContext) ([]domain.Room, error)
	GetRoomByID(ctx context.Context, authCtx domain.AuthContext, roomID string) (*domain.Room, error)
	CreateRoom(ctx context.Context, authCtx domain.AuthContext, req dto.CreateRoomRequest) (*domain.Room, error)
	UpdateRoom(ctx context.Context, authCtx domain.AuthContext, roomID string, req dto.UpdateRoomRequest) (*domain.Room, error)
	DeleteRoom(ctx context.Context, authCtx domain.AuthContext, roomID string) error
}

// VehicleSvcFacade defines CRUD over the tenant's vehicle fleet.
type VehicleSvcFacade interface {
	ListVehicles(ctx context.Context, authCtx domain.AuthContext) ([]domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, authCtx domain.AuthContext, vehicleID string) (*domain.Vehicle, error)

	// CreateVehicle registers a vehicle. The plate is unique per tenant.
	CreateVehicle(ctx context.Context, authCtx domain.AuthContext, req dto.CreateVehicleRequest) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, authCtx domain.AuthContext, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, authCtx domain.AuthContext, vehicleID string) error
}

// SupplierSvcFacade defines CRUD over the tenant's external providers.
type SupplierSvcFacade interface {
	ListSuppliers(ctx context.Context, authCtx domain.AuthContext) ([]domain.Supplier, error)
	GetSupplierByID(ctx context.Context, authCtx domain.AuthContext, supplierID string) (*domain.Supplier, error)
	CreateSupplier(ctx context.Context, authCtx domain.AuthContext, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, authCtx domain.AuthContext, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, authCtx domain.AuthContext, supplierID string) error
}
