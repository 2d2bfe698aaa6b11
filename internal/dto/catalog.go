package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreatePlanRequest adds a packaged service offering to the catalog.
type CreatePlanRequest struct {
	Nombre      string          `json:"nombre" binding:"required"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio" binding:"required"`
}

// UpdatePlanRequest partially updates a plan.
type UpdatePlanRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Activo      *bool            `json:"activo"`
}

// PlanResponse defines data returned for a plan.
type PlanResponse struct {
	PlanID      string          `json:"planID"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Activo      bool            `json:"activo"`
}

// ToPlanResponse converts domain.Plan to DTO.
func ToPlanResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		PlanID:      p.PlanID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Activo:      p.Activo,
	}
}

// ToPlanListResponse converts a slice of plans to DTOs.
func ToPlanListResponse(plans []domain.Plan) []PlanResponse {
	list := make([]PlanResponse, len(plans))
	for i, p := range plans {
		list[i] = ToPlanResponse(&p)
	}
	return list
}

// CreateCoffinUrnRequest adds a coffin or urn product to the catalog.
type CreateCoffinUrnRequest struct {
	Tipo     domain.CoffinUrnType `json:"tipo" binding:"required,oneof=ataud urna"`
	Modelo   string               `json:"modelo" binding:"required"`
	Material string               `json:"material"`
	Precio   decimal.Decimal      `json:"precio" binding:"required"`
}

// UpdateCoffinUrnRequest partially updates a coffin or urn product.
type UpdateCoffinUrnRequest struct {
	Tipo     *domain.CoffinUrnType `json:"tipo" binding:"omitempty,oneof=ataud urna"`
	Modelo   *string               `json:"modelo"`
	Material *string               `json:"material"`
	Precio   *decimal.Decimal      `json:"precio"`
	Activo   *bool                 `json:"activo"`
}

// CoffinUrnResponse defines data returned for a coffin or urn product.
type CoffinUrnResponse struct {
	CoffinUrnID string               `json:"coffinUrnID"`
	Tipo        domain.CoffinUrnType `json:"tipo"`
	Modelo      string               `json:"modelo"`
	Material    string               `json:"material"`
	Precio      decimal.Decimal      `json:"precio"`
	Activo      bool                 `json:"activo"`
}

// ToCoffinUrnResponse converts domain.CoffinUrn to DTO.
func ToCoffinUrnResponse(c *domain.CoffinUrn) CoffinUrnResponse {
	return CoffinUrnResponse{
		CoffinUrnID: c.CoffinUrnID,
		Tipo:        c.Tipo,
		Modelo:      c.Modelo,
		Material:    c.Material,
		Precio:      c.Precio,
		Activo:      c.Activo,
	}
}

// ToCoffinUrnListResponse converts a slice of coffin/urn products to DTOs.
func ToCoffinUrnListResponse(products []domain.CoffinUrn) []CoffinUrnResponse {
	list := make([]CoffinUrnResponse, len(products))
	for i, c := range products {
		list[i] = ToCoffinUrnResponse(&c)
	}
	return list
}

// CreateVehicleRequest registers a hearse or support vehicle.
type CreateVehicleRequest struct {
	BranchID *string `json:"branchID" binding:"omitempty,uuid"`
	Patente  string  `json:"patente" binding:"required"`
	Marca    string  `json:"marca"`
	Modelo   string  `json:"modelo"`
	Anio     *int    `json:"anio" binding:"omitempty,min=1950,max=2100"`
}

// UpdateVehicleRequest partially updates a vehicle.
type UpdateVehicleRequest struct {
	BranchID *string `json:"branchID" binding:"omitempty,uuid"`
	Patente  *string `json:"patente"`
	Marca    *string `json:"marca"`
	Modelo   *string `json:"modelo"`
	Anio     *int    `json:"anio" binding:"omitempty,min=1950,max=2100"`
	Activo   *bool   `json:"activo"`
}

// VehicleResponse defines data returned for a vehicle.
type VehicleResponse struct {
	VehicleID string  `json:"vehicleID"`
	BranchID  *string `json:"branchID,omitempty"`
	Patente   string  `json:"patente"`
	Marca     string  `json:"marca"`
	Modelo    string  `json:"modelo"`
	Anio      *int    `json:"anio,omitempty"`
	Activo    bool    `json:"activo"`
}

// ToVehicleResponse converts domain.Vehicle to DTO.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID: v.VehicleID,
		BranchID:  v.BranchID,
		Patente:   v.Patente,
		Marca:     v.Marca,
		Modelo:    v.Modelo,
		Anio:      v.Anio,
		Activo:    v.Activo,
	}
}

// ToVehicleListResponse converts a slice of vehicles to DTOs.
func ToVehicleListResponse(vehicles []domain.Vehicle) []VehicleResponse {
	list := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		list[i] = ToVehicleResponse(&v)
	}
	return list
}

// CreateSupplierRequest registers an external provider.
type CreateSupplierRequest struct {
	Nombre       string  `json:"nombre" binding:"required"`
	RUT          *string `json:"rut" binding:"omitempty,rut"`
	Categoria    string  `json:"categoria"`
	ContactName  *string `json:"contactName"`
	ContactPhone *string `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
}

// UpdateSupplierRequest partially updates a supplier.
type UpdateSupplierRequest struct {
	Nombre       *string `json:"nombre"`
	RUT          *string `json:"rut" binding:"omitempty,rut"`
	Categoria    *string `json:"categoria"`
	ContactName  *string `json:"contactName"`
	ContactPhone *string `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	Activo       *bool   `json:"activo"`
}

// SupplierResponse defines data returned for a supplier.
type SupplierResponse struct {
	SupplierID   string  `json:"supplierID"`
	Nombre       string  `json:"nombre"`
	RUT          *string `json:"rut,omitempty"`
	Categoria    string  `json:"categoria"`
	ContactName  *string `json:"contactName,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Activo       bool    `json:"activo"`
}

// ToSupplierResponse converts domain.Supplier to DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:   s.SupplierID,
		Nombre:       s.Nombre,
		RUT:          s.RUT,
		Categoria:    s.Categoria,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
		ContactEmail: s.ContactEmail,
		Activo:       s.Activo,
	}
}

// ToSupplierListResponse converts a slice of suppliers to DTOs.
func ToSupplierListResponse(suppliers []domain.Supplier) []SupplierResponse {
	list := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		list[i] = ToSupplierResponse(&s)
	}
	return list
}

// CreateCemeteryRequest registers a cemetery or crematorium destination.
type CreateCemeteryRequest struct {
	Tipo      domain.CemeteryType `json:"tipo" binding:"required,oneof=cementerio crematorio"`
	Nombre    string              `json:"nombre" binding:"required"`
	Comuna    string              `json:"comuna"`
	Direccion string              `json:"direccion"`
}

// UpdateCemeteryRequest partially updates a cemetery or crematorium.
type UpdateCemeteryRequest struct {
	Tipo      *domain.CemeteryType `json:"tipo" binding:"omitempty,oneof=cementerio crematorio"`
	Nombre    *string              `json:"nombre"`
	Comuna    *string              `json:"comuna"`
	Direccion *string              `json:"direccion"`
	Activo    *bool                `json:"activo"`
}

// CemeteryResponse defines data returned for a cemetery or crematorium.
type CemeteryResponse struct {
	CemeteryID string              `json:"cemeteryID"`
	Tipo       domain.CemeteryType `json:"tipo"`
	Nombre     string              `json:"nombre"`
	Comuna     string              `json:"comuna"`
	Direccion  string              `json:"direccion"`
	Activo     bool                `json:"activo"`
}

// ToCemeteryResponse converts domain.CemeteryCrematorium to DTO.
func ToCemeteryResponse(c *domain.CemeteryCrematorium) CemeteryResponse {
	return CemeteryResponse{
		CemeteryID: c.CemeteryID,
		Tipo:       c.Tipo,
		Nombre:     c.Nombre,
		Comuna:     c.Comuna,
		Direccion:  c.Direccion,
		Activo:     c.Activo,
	}
}

// ToCemeteryListResponse converts a slice of cemeteries to DTOs.
func ToCemeteryListResponse(sites []domain.CemeteryCrematorium) []CemeteryResponse {
	list := make([]CemeteryResponse, len(sites))
	for i, c := range sites {
		list[i] = ToCemeteryResponse(&c)
	}
	return list
}

// CreateRoomRequest adds a wake room to a branch.
type CreateRoomRequest struct {
	BranchID  string `json:"branchID" binding:"required,uuid"`
	Nombre    string `json:"nombre" binding:"required"`
	Capacidad *int   `json:"capacidad" binding:"omitempty,min=1"`
}

// UpdateRoomRequest partially updates a wake room.
type UpdateRoomRequest struct {
	Nombre    *string `json:"nombre"`
	Capacidad *int    `json:"capacidad" binding:"omitempty,min=1"`
	Activo    *bool   `json:"activo"`
}

// RoomResponse defines data returned for a wake room.
type RoomResponse struct {
	RoomID    string `json:"roomID"`
	BranchID  string `json:"branchID"`
	Nombre    string `json:"nombre"`
	Capacidad *int   `json:"capacidad,omitempty"`
	Activo    bool   `json:"activo"`
}

// ToRoomResponse converts domain.Room to DTO.
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:    r.RoomID,
		BranchID:  r.BranchID,
		Nombre:    r.Nombre,
		Capacidad: r.Capacidad,
		Activo:    r.Activo,
	}
}

// ToRoomListResponse converts a slice of rooms to DTOs.
func ToRoomListResponse(rooms []domain.Room) []RoomResponse {
	list := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		list[i] = ToRoomResponse(&r)
	}
	return list
}
