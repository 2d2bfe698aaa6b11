package dto

// SignupRequest creates a whole new tenant: the funeral home, its main
// branch and the initial admin user.
type SignupRequest struct {
	FullName             string `json:"fullName" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	FuneralHomeLegalName string `json:"funeralHomeLegalName" binding:"required"`
	FuneralHomeTradeName string `json:"funeralHomeTradeName"`
	FuneralHomeRut       string `json:"funeralHomeRut" binding:"required,rut"`
	BranchName           string `json:"branchName"`
	BranchAddress        string `json:"branchAddress"`
}

// SignupResponse mirrors the original signup route contract.
type SignupResponse struct {
	Success bool `json:"success"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// GoogleLoginRequest authenticates with a Google ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// APIError is the error payload of the public auth routes.
type APIError struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
