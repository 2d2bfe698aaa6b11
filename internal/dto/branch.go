package dto

import (
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreateBranchRequest adds a branch to the caller's funeral home.
type CreateBranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateBranchRequest partially updates a branch.
type UpdateBranchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// BranchResponse defines data returned for a branch.
type BranchResponse struct {
	BranchID      string `json:"branchID"`
	FuneralHomeID string `json:"funeralHomeID"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	EstadoActivo  bool   `json:"estadoActivo"`
}

// ToBranchResponse converts domain.Branch to DTO.
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID:      b.BranchID,
		FuneralHomeID: b.FuneralHomeID,
		Name:          b.Name,
		Address:       b.Address,
		Phone:         b.Phone,
		EstadoActivo:  b.EstadoActivo,
	}
}

// ToBranchListResponse converts a slice of domain.Branch to DTOs.
func ToBranchListResponse(branches []domain.Branch) []BranchResponse {
	list := make([]BranchResponse, len(branches))
	for i, b := range branches {
		list[i] = ToBranchResponse(&b)
	}
	return list
}
