package domain

import "github.com/shopspring/decimal"

// Plan is a packaged funeral service offering.
type Plan struct {
	PlanID        string          `json:"planID" db:"plan_id"`
	FuneralHomeID string          `json:"funeralHomeID" db:"funeral_home_id"`
	Nombre        string          `json:"nombre" db:"nombre"`
	Descripcion   string          `json:"descripcion" db:"descripcion"`
	Precio        decimal.Decimal `json:"precio" db:"precio"`
	Activo        bool            `json:"activo" db:"activo"`
	AuditFields
}

// CoffinUrnType distinguishes coffins from urns in the product catalog.
type CoffinUrnType string

const (
	CatalogAtaud CoffinUrnType = "ataud"
	CatalogUrna  CoffinUrnType = "urna"
)

// CoffinUrn is a coffin or urn catalog product.
type CoffinUrn struct {
	CoffinUrnID   string          `json:"coffinUrnID" db:"coffin_urn_id"`
	FuneralHomeID string          `json:"funeralHomeID" db:"funeral_home_id"`
	Tipo          CoffinUrnType   `json:"tipo" db:"tipo"`
	Modelo        string          `json:"modelo" db:"modelo"`
	Material      string          `json:"material" db:"material"`
	Precio        decimal.Decimal `json:"precio" db:"precio"`
	Activo        bool            `json:"activo" db:"activo"`
	AuditFields
}

// Vehicle is a hearse or support vehicle belonging to a branch.
type Vehicle struct {
	VehicleID     string  `json:"vehicleID" db:"vehicle_id"`
	FuneralHomeID string  `json:"funeralHomeID" db:"funeral_home_id"`
	BranchID      *string `json:"branchID" db:"branch_id"`
	Patente       string  `json:"patente" db:"patente"`
	Marca         string  `json:"marca" db:"marca"`
	Modelo        string  `json:"modelo" db:"modelo"`
	Anio          *int    `json:"anio" db:"anio"`
	Activo        bool    `json:"activo" db:"activo"`
	AuditFields
}

// Supplier is an external provider of goods or services.
type Supplier struct {
	SupplierID    string  `json:"supplierID" db:"supplier_id"`
	FuneralHomeID string  `json:"funeralHomeID" db:"funeral_home_id"`
	Nombre        string  `json:"nombre" db:"nombre"`
	RUT           *string `json:"rut" db:"rut"`
	Categoria     string  `json:"categoria" db:"categoria"`
	ContactName   *string `json:"contactName" db:"contact_name"`
	ContactPhone  *string `json:"contactPhone" db:"contact_phone"`
	ContactEmail  *string `json:"contactEmail" db:"contact_email"`
	Activo        bool    `json:"activo" db:"activo"`
	AuditFields
}

// CemeteryType distinguishes cemeteries from crematoriums.
type CemeteryType string

const (
	SiteCementerio CemeteryType = "cementerio"
	SiteCrematorio CemeteryType = "crematorio"
)

// CemeteryCrematorium is a destination site for inhumations and cremations.
type CemeteryCrematorium struct {
	CemeteryID    string       `json:"cemeteryID" db:"cemetery_id"`
	FuneralHomeID string       `json:"funeralHomeID" db:"funeral_home_id"`
	Tipo          CemeteryType `json:"tipo" db:"tipo"`
	Nombre        string       `json:"nombre" db:"nombre"`
	Comuna        string       `json:"comuna" db:"comuna"`
	Direccion     string       `json:"direccion" db:"direccion"`
	Activo        bool         `json:"activo" db:"activo"`
	AuditFields
}

// Room is a wake room within a branch, schedulable for velatorios.
type Room struct {
	RoomID        string `json:"roomID" db:"room_id"`
	FuneralHomeID string `json:"funeralHomeID" db:"funeral_home_id"`
	BranchID      string `json:"branchID" db:"branch_id"`
	Nombre        string `json:"nombre" db:"nombre"`
	Capacidad     *int   `json:"capacidad" db:"capacidad"`
	Activo        bool   `json:"activo" db:"activo"`
	AuditFields
}
