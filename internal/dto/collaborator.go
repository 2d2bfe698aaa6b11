package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreateCollaboratorRequest registers a staff member assignable to services.
type CreateCollaboratorRequest struct {
	BranchID     *string             `json:"branchID" binding:"omitempty,uuid"`
	FullName     string              `json:"fullName" binding:"required"`
	RUT          string              `json:"rut" binding:"required,rut"`
	Email        *string             `json:"email" binding:"omitempty,email"`
	Phone        *string             `json:"phone"`
	TipoContrato domain.ContractType `json:"tipoContrato" binding:"required,oneof=empleado honorarios"`
	SueldoBase   decimal.Decimal     `json:"sueldoBase"`
}

// UpdateCollaboratorRequest partially updates a collaborator.
type UpdateCollaboratorRequest struct {
	BranchID     *string              `json:"branchID" binding:"omitempty,uuid"`
	FullName     *string              `json:"fullName"`
	Email        *string              `json:"email" binding:"omitempty,email"`
	Phone        *string              `json:"phone"`
	TipoContrato *domain.ContractType `json:"tipoContrato" binding:"omitempty,oneof=empleado honorarios"`
	SueldoBase   *decimal.Decimal     `json:"sueldoBase"`
}

// ListCollaboratorsQuery captures the query parameters of the collaborator
// listing.
type ListCollaboratorsQuery struct {
	BranchID        *string              `form:"branchID"`
	TipoContrato    *domain.ContractType `form:"tipoContrato"`
	Buscar          *string              `form:"buscar"`
	IncludeInactive bool                 `form:"includeInactive"`
}

// ToCollaboratorFilter converts the query DTO to a domain filter.
func (q ListCollaboratorsQuery) ToCollaboratorFilter() domain.CollaboratorFilter {
	return domain.CollaboratorFilter{
		BranchID:        q.BranchID,
		TipoContrato:    q.TipoContrato,
		Buscar:          q.Buscar,
		IncludeInactive: q.IncludeInactive,
	}
}

// CollaboratorResponse defines data returned for a collaborator.
type CollaboratorResponse struct {
	CollaboratorID string              `json:"collaboratorID"`
	BranchID       *string             `json:"branchID,omitempty"`
	FullName       string              `json:"fullName"`
	RUT            string              `json:"rut"`
	Email          *string             `json:"email,omitempty"`
	Phone          *string             `json:"phone,omitempty"`
	TipoContrato   domain.ContractType `json:"tipoContrato"`
	SueldoBase     decimal.Decimal     `json:"sueldoBase"`
	EstadoActivo   bool                `json:"estadoActivo"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ToCollaboratorResponse converts domain.Collaborator to DTO.
func ToCollaboratorResponse(c *domain.Collaborator) CollaboratorResponse {
	return CollaboratorResponse{
		CollaboratorID: c.CollaboratorID,
		BranchID:       c.BranchID,
		FullName:       c.FullName,
		RUT:            c.RUT,
		Email:          c.Email,
		Phone:          c.Phone,
		TipoContrato:   c.TipoContrato,
		SueldoBase:     c.SueldoBase,
		EstadoActivo:   c.EstadoActivo,
		CreatedAt:      c.CreatedAt,
	}
}

// ToCollaboratorListResponse converts a slice of collaborators to DTOs.
func ToCollaboratorListResponse(collaborators []domain.Collaborator) []CollaboratorResponse {
	list := make([]CollaboratorResponse, len(collaborators))
	for i, c := range collaborators {
		list[i] = ToCollaboratorResponse(&c)
	}
	return list
}
