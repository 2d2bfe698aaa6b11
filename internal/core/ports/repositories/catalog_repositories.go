package repositories

import (
	"context"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CatalogRepositoryFacade covers the simple reference catalogs (plans,
// coffins/urns, cemeteries/crematoriums, rooms). All reads are tenant
// scoped; deletes are hard and rely on FK constraints, which the repository
// translates into validation errors.
type CatalogRepositoryFacade interface {
	SavePlan(ctx context.Context, plan domain.Plan) error
	FindPlanByID(ctx context.Context, funeralHomeID, planID string) (*domain.Plan, error)
	ListPlans(ctx context.Context, funeralHomeID string, includeInactive bool) ([]domain.Plan, error)
	UpdatePlan(ctx context.Context, plan domain.Plan) error
	DeletePlan(ctx context.Context, funeralHomeID, planID string) error

	SaveCoffinUrn(ctx context.Context, item domain.CoffinUrn) error
	FindCoffinUrnByID(ctx context.Context, funeralHomeID, coffinUrnID string) (*domain.CoffinUrn, error)
	ListCoffinUrns(ctx context.Context, funeralHomeID string, tipo *domain.CoffinUrnType) ([]domain.CoffinUrn, error)
	UpdateCoffinUrn(ctx context.Context, item domain.CoffinUrn) error
	DeleteCoffinUrn(ctx context.Context, funeralHomeID, coffinUrnID string) error

	SaveCemetery(ctx context.Context, site domain.CemeteryCrematorium) error
	FindCemeteryByID(ctx context.Context, funeralHomeID, cemeteryID string) (*domain.CemeteryCrematorium, error)
	ListCemeteries(ctx context.Context, funeralHomeID string, tipo *domain.CemeteryType) ([]domain.CemeteryCrematorium, error)
	UpdateCemetery(ctx context.Context, site domain.CemeteryCrematorium) error
	DeleteCemetery(ctx context.Context, funeralHomeID, cemeteryID string) error

	SaveRoom(ctx context.Context, room domain.Room) error
	FindRoomByID(ctx context.Context, funeralHomeID, roomID string) (*domain.Room, error)
	ListRooms(ctx context.Context, funeralHomeID string, branchID *string) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, room domain.Room) error
	DeleteRoom(ctx context.Context, funeralHomeID, roomID string) error
}

// VehicleRepositoryFacade manages the vehicle catalog. Plates are unique per
// tenant; the repository translates duplicate plates into validation errors.
type VehicleRepositoryFacade interface {
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	FindVehicleByID(ctx context.Context, funeralHomeID, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, funeralHomeID string, branchID *string) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, funeralHomeID, vehicleID string) error
}

// SupplierRepositoryFacade manages the supplier catalog.
type SupplierRepositoryFacade interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, funeralHomeID, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, funeralHomeID string, buscar *string) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, funeralHomeID, supplierID string) error
}
