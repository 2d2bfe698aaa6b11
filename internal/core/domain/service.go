package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType is the kind of funeral case.
type ServiceType string

const (
	ServiceInhumacion ServiceType = "inhumacion"
	ServiceCremacion  ServiceType = "cremacion"
	ServiceTraslado   ServiceType = "traslado"
	ServiceVelatorio  ServiceType = "velatorio"
)

// ServiceStatus is the lifecycle state of a funeral case. Transitions are
// deliberately loose: the UI sets the status directly and only enum
// membership is validated.
type ServiceStatus string

const (
	ServiceBorrador    ServiceStatus = "borrador"
	ServiceConfirmado  ServiceStatus = "confirmado"
	ServiceEnEjecucion ServiceStatus = "en_ejecucion"
	ServiceFinalizado  ServiceStatus = "finalizado"
	ServiceCerrado     ServiceStatus = "cerrado"
)

// ValidServiceStatus reports whether s is a known lifecycle state.
func ValidServiceStatus(s ServiceStatus) bool {
	switch s {
	case ServiceBorrador, ServiceConfirmado, ServiceEnEjecucion, ServiceFinalizado, ServiceCerrado:
		return true
	}
	return false
}

// Service is a funeral case: the central operational record of the system.
type Service struct {
	ServiceID     string        `json:"serviceID" db:"service_id"`
	FuneralHomeID string        `json:"funeralHomeID" db:"funeral_home_id"`
	BranchID      string        `json:"branchID" db:"branch_id"`
	Numero        int           `json:"numero" db:"numero"` // correlative per tenant
	Tipo          ServiceType   `json:"tipo" db:"tipo"`
	Estado        ServiceStatus `json:"estado" db:"estado"`

	DeceasedName     string     `json:"deceasedName" db:"deceased_name"`
	DeceasedRUT      *string    `json:"deceasedRut" db:"deceased_rut"`
	DeathDate        *time.Time `json:"deathDate" db:"death_date"`
	ResponsibleName  string     `json:"responsibleName" db:"responsible_name"`
	ResponsibleRUT   *string    `json:"responsibleRut" db:"responsible_rut"`
	ResponsiblePhone *string    `json:"responsiblePhone" db:"responsible_phone"`
	ResponsibleEmail *string    `json:"responsibleEmail" db:"responsible_email"`

	PlanID      *string `json:"planID" db:"plan_id"`
	CoffinUrnID *string `json:"coffinUrnID" db:"coffin_urn_id"`
	CemeteryID  *string `json:"cemeteryID" db:"cemetery_id"`
	VehicleID   *string `json:"vehicleID" db:"vehicle_id"`
	RoomID      *string `json:"roomID" db:"room_id"`

	TotalFinal decimal.Decimal `json:"totalFinal" db:"total_final"`
	Descuento  decimal.Decimal `json:"descuento" db:"descuento"`
	Notas      string          `json:"notas" db:"notas"`
	AuditFields
}

// AssignmentExtraPay is how a collaborator's extra pay for a service is computed.
type AssignmentExtraPay string

const (
	ExtraPayNinguno    AssignmentExtraPay = "ninguno"
	ExtraPayFijo       AssignmentExtraPay = "fijo"
	ExtraPayPorcentaje AssignmentExtraPay = "porcentaje"
)

// ServiceAssignment links a collaborator to a service with a role and the
// extra pay they earn from it.
type ServiceAssignment struct {
	AssignmentID   string             `json:"assignmentID" db:"assignment_id"`
	ServiceID      string             `json:"serviceID" db:"service_id"`
	CollaboratorID string             `json:"collaboratorID" db:"collaborator_id"`
	FuneralHomeID  string             `json:"funeralHomeID" db:"funeral_home_id"`
	Rol            string             `json:"rol" db:"rol"`
	ExtraPayType   AssignmentExtraPay `json:"extraPayType" db:"extra_pay_type"`
	ExtraPayAmount decimal.Decimal    `json:"extraPayAmount" db:"extra_pay_amount"`
	AuditFields
}
