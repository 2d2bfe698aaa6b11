package domain

// UserRole defines the roles a user can have within their funeral home.
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleEjecutivo   UserRole = "ejecutivo"
	RoleOperaciones UserRole = "operaciones"
	RoleCaja        UserRole = "caja"
	RoleColaborador UserRole = "colaborador"
)

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is the authentication identity plus profile of a staff member.
// A user belongs to one funeral home and may be assigned to many branches.
type User struct {
	UserID         string       `json:"userID" db:"user_id"`
	FuneralHomeID  string       `json:"funeralHomeID" db:"funeral_home_id"`
	Email          string       `json:"email" db:"email"`
	FullName       string       `json:"fullName" db:"full_name"`
	Role           UserRole     `json:"role" db:"role"`
	PasswordHash   *string      `json:"-" db:"password_hash"`
	AuthProvider   AuthProvider `json:"authProvider" db:"auth_provider"`
	ProviderUserID *string      `json:"-" db:"provider_user_id"`
	EstadoActivo   bool         `json:"estadoActivo" db:"estado_activo"`
	AuditFields
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
