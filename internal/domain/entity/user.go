package entity

import "time"

// Roles válidos para User, de mayor a menor privilegio.
const (
	RoleCoreAdmin = "core_admin"
	RoleAdmin     = "admin"
	RoleUser      = "user"
)

// Permisos explícitos asignables a un usuario.
const (
	PermRead              = "read"
	PermWrite             = "write"
	PermDelete            = "delete"
	PermManageUsers       = "manage_users"
	PermViewAudit         = "view_audit"
	PermExportData        = "export_data"
	PermManagePermissions = "manage_permissions"
	PermManageCategories  = "manage_categories"
	PermFullAccess        = "full_access"
)

// DefaultPermissions devuelve el set de permisos por defecto de un rol.
func DefaultPermissions(role string) []string {
	switch role {
	case RoleCoreAdmin:
		return []string{PermRead, PermWrite, PermDelete, PermManageUsers, PermViewAudit,
			PermExportData, PermManagePermissions, PermManageCategories, PermFullAccess}
	case RoleAdmin:
		return []string{PermRead, PermWrite, PermViewAudit, PermExportData}
	default:
		return []string{PermRead}
	}
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // core_admin, admin, user
	Department   string
	Permissions  []string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission indica si el usuario tiene el permiso dado.
func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
