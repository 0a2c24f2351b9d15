// Package permission resuelve si un usuario puede ejecutar una acción sobre un módulo
// a partir de la tabla rol → permisos. Es una búsqueda pura, sin efectos.
package permission

import "github.com/jhoicas/Deposito-api/internal/domain/entity"

// RoleLookup resuelve un rol por ID; ok=false si no existe.
type RoleLookup func(roleID string) (*entity.Role, bool)

// HasPermission devuelve false si no hay usuario, si su rol no existe, si el rol no tiene
// entrada para el módulo o si la acción no está en esa entrada.
func HasPermission(user *entity.User, roles RoleLookup, module entity.Module, action entity.Action) bool {
	if user == nil || roles == nil {
		return false
	}
	role, ok := roles(user.RoleID)
	if !ok || role == nil {
		return false
	}
	perm, ok := role.PermissionFor(module)
	if !ok {
		return false
	}
	return perm.Allows(action)
}

// FromRoles construye un RoleLookup sobre una lista de roles.
func FromRoles(roles []*entity.Role) RoleLookup {
	byID := make(map[string]*entity.Role, len(roles))
	for _, r := range roles {
		byID[r.ID] = r
	}
	return func(roleID string) (*entity.Role, bool) {
		r, ok := byID[roleID]
		return r, ok
	}
}

// Resolve devuelve, para cada módulo, las acciones que el usuario tiene permitidas.
// Usado por la consola para decidir qué mostrar.
func Resolve(user *entity.User, roles RoleLookup) map[entity.Module][]entity.Action {
	out := make(map[entity.Module][]entity.Action)
	for _, m := range entity.AllModules() {
		for _, a := range entity.AllActions() {
			if HasPermission(user, roles, m, a) {
				out[m] = append(out[m], a)
			}
		}
	}
	return out
}
