package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// AuthContext carries the resolved identity and tenant scope of the caller.
// It is built once per request by the tenant middleware and passed to every
// service operation, so services never re-fetch the profile themselves.
type AuthContext struct {
	UserID        string
	FuneralHomeID string
	Role          UserRole
	BranchIDs     []string
}

// CanAccessBranch reports whether the caller is assigned to the given branch.
// Admins can access every branch of their funeral home.
func (a AuthContext) CanAccessBranch(branchID string) bool {
	if a.Role == RoleAdmin {
		return true
	}
	for _, id := range a.BranchIDs {
		if id == branchID {
			return true
		}
	}
	return false
}
