package dto

// SaveUserRequest entrada para crear o actualizar un usuario.
type SaveUserRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	RoleID string `json:"role_id" validate:"required"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name,omitempty"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

// PermissionDTO acciones permitidas sobre un módulo.
type PermissionDTO struct {
	Module  string   `json:"module" validate:"required"`
	Actions []string `json:"actions" validate:"required,min=1"`
}

// SaveRoleRequest entrada para crear o actualizar un rol.
type SaveRoleRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Permissions []PermissionDTO `json:"permissions" validate:"dive"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Permissions []PermissionDTO `json:"permissions"`
}

// RoleListResponse lista de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
}

// LoginRequest selección de usuario en la pantalla de ingreso (sin credenciales).
type LoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// LoginResponse token de sesión y usuario elegido.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SessionResponse usuario actual y sus permisos resueltos por módulo.
type SessionResponse struct {
	User        UserResponse        `json:"user"`
	Permissions map[string][]string `json:"permissions"`
}

// PermissionCheckResponse resultado de hasPermission.
type PermissionCheckResponse struct {
	Module  string `json:"module"`
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`
}
