package dto

import (
	"time"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
)

// CreateUserRequest adds a staff member to the caller's funeral home.
type CreateUserRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=8"`
	FullName  string          `json:"fullName" binding:"required"`
	Role      domain.UserRole `json:"role" binding:"required,oneof=admin ejecutivo operaciones caja colaborador"`
	BranchIDs []string        `json:"branchIDs"`
}

// UpdateUserRequest partially updates a staff member. Nil fields are left as is.
type UpdateUserRequest struct {
	FullName  *string          `json:"fullName"`
	Role      *domain.UserRole `json:"role" binding:"omitempty,oneof=admin ejecutivo operaciones caja colaborador"`
	BranchIDs *[]string        `json:"branchIDs"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID        string          `json:"userID"`
	FuneralHomeID string          `json:"funeralHomeID"`
	Email         string          `json:"email"`
	FullName      string          `json:"fullName"`
	Role          domain.UserRole `json:"role"`
	EstadoActivo  bool            `json:"estadoActivo"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		FuneralHomeID: u.FuneralHomeID,
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          u.Role,
		EstadoActivo:  u.EstadoActivo,
		CreatedAt:     u.CreatedAt,
	}
}

// ToUserListResponse converts a slice of domain.User to DTOs.
func ToUserListResponse(users []domain.User) []UserResponse {
	list := make([]UserResponse, len(users))
	for i, u := range users {
		list[i] = ToUserResponse(&u)
	}
	return list
}
