package domain

import "time"

// FuneralHome is the tenant root. Every other row in the system belongs to
// exactly one funeral home.
type FuneralHome struct {
	FuneralHomeID string `json:"funeralHomeID" db:"funeral_home_id"`
	LegalName     string `json:"legalName" db:"legal_name"`
	TradeName     string `json:"tradeName" db:"trade_name"`
	RUT           string `json:"rut" db:"rut"`
	IsActive      bool   `json:"isActive" db:"is_active"`
	AuditFields
}

// Branch is a physical location under a funeral home. Staff, vehicles, rooms
// and services are scoped to a branch.
type Branch struct {
	BranchID      string `json:"branchID" db:"branch_id"`
	FuneralHomeID string `json:"funeralHomeID" db:"funeral_home_id"`
	Name          string `json:"name" db:"name"`
	Address       string `json:"address" db:"address"`
	Phone         string `json:"phone" db:"phone"`
	EstadoActivo  bool   `json:"estadoActivo" db:"estado_activo"`
	AuditFields
}

// UserBranch links a user to one of the branches they may operate in.
type UserBranch struct {
	UserID     string    `json:"userID" db:"user_id"`
	BranchID   string    `json:"branchID" db:"branch_id"`
	AssignedAt time.Time `json:"assignedAt" db:"assigned_at"`
}
