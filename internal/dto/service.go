package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreateServiceRequest opens a new funeral case. The correlative number is
// assigned server-side.
type CreateServiceRequest struct {
	BranchID string             `json:"branchID" binding:"required,uuid"`
	Tipo     domain.ServiceType `json:"tipo" binding:"required,oneof=inhumacion cremacion traslado velatorio"`

	DeceasedName     string  `json:"deceasedName" binding:"required"`
	DeceasedRUT      *string `json:"deceasedRut" binding:"omitempty,rut"`
	DeathDate        *string `json:"deathDate" binding:"omitempty,datetime=2006-01-02"`
	ResponsibleName  string  `json:"responsibleName" binding:"required"`
	ResponsibleRUT   *string `json:"responsibleRut" binding:"omitempty,rut"`
	ResponsiblePhone *string `json:"responsiblePhone"`
	ResponsibleEmail *string `json:"responsibleEmail" binding:"omitempty,email"`

	PlanID      *string `json:"planID" binding:"omitempty,uuid"`
	CoffinUrnID *string `json:"coffinUrnID" binding:"omitempty,uuid"`
	CemeteryID  *string `json:"cemeteryID" binding:"omitempty,uuid"`
	VehicleID   *string `json:"vehicleID" binding:"omitempty,uuid"`
	RoomID      *string `json:"roomID" binding:"omitempty,uuid"`

	TotalFinal decimal.Decimal `json:"totalFinal"`
	Descuento  decimal.Decimal `json:"descuento"`
	Notas      string          `json:"notas"`
}

// UpdateServiceRequest partially updates a funeral case. Nil fields are left
// as is; estado changes are validated against the known lifecycle states.
type UpdateServiceRequest struct {
	Estado   *domain.ServiceStatus `json:"estado"`
	Tipo     *domain.ServiceType   `json:"tipo" binding:"omitempty,oneof=inhumacion cremacion traslado velatorio"`
	BranchID *string               `json:"branchID" binding:"omitempty,uuid"`

	DeceasedName     *string `json:"deceasedName"`
	DeceasedRUT      *string `json:"deceasedRut" binding:"omitempty,rut"`
	DeathDate        *string `json:"deathDate" binding:"omitempty,datetime=2006-01-02"`
	ResponsibleName  *string `json:"responsibleName"`
	ResponsibleRUT   *string `json:"responsibleRut" binding:"omitempty,rut"`
	ResponsiblePhone *string `json:"responsiblePhone"`
	ResponsibleEmail *string `json:"responsibleEmail" binding:"omitempty,email"`

	PlanID      *string `json:"planID" binding:"omitempty,uuid"`
	CoffinUrnID *string `json:"coffinUrnID" binding:"omitempty,uuid"`
	CemeteryID  *string `json:"cemeteryID" binding:"omitempty,uuid"`
	VehicleID   *string `json:"vehicleID" binding:"omitempty,uuid"`
	RoomID      *string `json:"roomID" binding:"omitempty,uuid"`

	TotalFinal *decimal.Decimal `json:"totalFinal"`
	Descuento  *decimal.Decimal `json:"descuento"`
	Notas      *string          `json:"notas"`
}

// ListServicesQuery captures the query parameters of the service listing.
type ListServicesQuery struct {
	Estado   *domain.ServiceStatus `form:"estado"`
	Tipo     *domain.ServiceType   `form:"tipo"`
	BranchID *string               `form:"branchID"`
	Desde    *time.Time            `form:"desde" time_format:"2006-01-02"`
	Hasta    *time.Time            `form:"hasta" time_format:"2006-01-02"`
	Buscar   *string               `form:"buscar"`
}

// ToServiceFilter converts the query DTO to a domain filter.
func (q ListServicesQuery) ToServiceFilter() domain.ServiceFilter {
	return domain.ServiceFilter{
		Estado:   q.Estado,
		Tipo:     q.Tipo,
		BranchID: q.BranchID,
		Desde:    q.Desde,
		Hasta:    q.Hasta,
		Buscar:   q.Buscar,
	}
}

// ServiceResponse defines data returned for a funeral case.
type ServiceResponse struct {
	ServiceID     string               `json:"serviceID"`
	FuneralHomeID string               `json:"funeralHomeID"`
	BranchID      string               `json:"branchID"`
	Numero        int                  `json:"numero"`
	Tipo          domain.ServiceType   `json:"tipo"`
	Estado        domain.ServiceStatus `json:"estado"`

	DeceasedName     string     `json:"deceasedName"`
	DeceasedRUT      *string    `json:"deceasedRut,omitempty"`
	DeathDate        *time.Time `json:"deathDate,omitempty"`
	ResponsibleName  string     `json:"responsibleName"`
	ResponsibleRUT   *string    `json:"responsibleRut,omitempty"`
	ResponsiblePhone *string    `json:"responsiblePhone,omitempty"`
	ResponsibleEmail *string    `json:"responsibleEmail,omitempty"`

	PlanID      *string `json:"planID,omitempty"`
	CoffinUrnID *string `json:"coffinUrnID,omitempty"`
	CemeteryID  *string `json:"cemeteryID,omitempty"`
	VehicleID   *string `json:"vehicleID,omitempty"`
	RoomID      *string `json:"roomID,omitempty"`

	TotalFinal decimal.Decimal `json:"totalFinal"`
	Descuento  decimal.Decimal `json:"descuento"`
	Notas      string          `json:"notas"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToServiceResponse converts domain.Service to DTO.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:        s.ServiceID,
		FuneralHomeID:    s.FuneralHomeID,
		BranchID:         s.BranchID,
		Numero:           s.Numero,
		Tipo:             s.Tipo,
		Estado:           s.Estado,
		DeceasedName:     s.DeceasedName,
		DeceasedRUT:      s.DeceasedRUT,
		DeathDate:        s.DeathDate,
		ResponsibleName:  s.ResponsibleName,
		ResponsibleRUT:   s.ResponsibleRUT,
		ResponsiblePhone: s.ResponsiblePhone,
		ResponsibleEmail: s.ResponsibleEmail,
		PlanID:           s.PlanID,
		CoffinUrnID:      s.CoffinUrnID,
		CemeteryID:       s.CemeteryID,
		VehicleID:        s.VehicleID,
		RoomID:           s.RoomID,
		TotalFinal:       s.TotalFinal,
		Descuento:        s.Descuento,
		Notas:            s.Notas,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.LastUpdatedAt,
	}
}

// ToServiceListResponse converts a slice of domain.Service to DTOs.
func ToServiceListResponse(services []domain.Service) []ServiceResponse {
	list := make([]ServiceResponse, len(services))
	for i, s := range services {
		list[i] = ToServiceResponse(&s)
	}
	return list
}

// CreateAssignmentRequest links a collaborator to a funeral case.
type CreateAssignmentRequest struct {
	CollaboratorID string                    `json:"collaboratorID" binding:"required,uuid"`
	Rol            string                    `json:"rol" binding:"required"`
	ExtraPayType   domain.AssignmentExtraPay `json:"extraPayType" binding:"required,oneof=ninguno fijo porcentaje"`
	ExtraPayAmount decimal.Decimal           `json:"extraPayAmount"`
}

// AssignmentResponse defines data returned for a service assignment.
type AssignmentResponse struct {
	AssignmentID   string                    `json:"assignmentID"`
	ServiceID      string                    `json:"serviceID"`
	CollaboratorID string                    `json:"collaboratorID"`
	Rol            string                    `json:"rol"`
	ExtraPayType   domain.AssignmentExtraPay `json:"extraPayType"`
	ExtraPayAmount decimal.Decimal           `json:"extraPayAmount"`
}

// ToAssignmentResponse converts domain.ServiceAssignment to DTO.
func ToAssignmentResponse(a *domain.ServiceAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:   a.AssignmentID,
		ServiceID:      a.ServiceID,
		CollaboratorID: a.CollaboratorID,
		Rol:            a.Rol,
		ExtraPayType:   a.ExtraPayType,
		ExtraPayAmount: a.ExtraPayAmount,
	}
}

// ToAssignmentListResponse converts a slice of assignments to DTOs.
func ToAssignmentListResponse(assignments []domain.ServiceAssignment) []AssignmentResponse {
	list := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		list[i] = ToAssignmentResponse(&a)
	}
	return list
}
