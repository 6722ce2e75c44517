package dto

// CreateUserRequest body para POST /api/users (alta administrativa).
type CreateUserRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	Department  string   `json:"department,omitempty"`
	Permissions []string `json:"permissions,omitempty"` // vacío = defaults del rol
}

// UpdateUserRequest body para PUT /api/users/:id. Campos nil no se tocan.
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// UpdatePermissionsRequest body para PUT /api/users/:id/permissions.
type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}
