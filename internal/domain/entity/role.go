package entity

import "slices"

// Module área funcional usada como unidad de permisos.
type Module string

// Action acción permitida sobre un módulo.
type Action string

// Módulos disponibles (conjunto cerrado).
const (
	ModuleInventory       Module = "inventory"
	ModuleProducts        Module = "products"
	ModuleWarehouses      Module = "warehouses"
	ModuleMovements       Module = "movements"
	ModuleMovementHistory Module = "movementHistory"
	ModuleAdmin           Module = "admin"
	ModuleReports         Module = "reports"
	ModuleImport          Module = "import"
	ModuleReset           Module = "reset"
)

// Acciones disponibles (conjunto cerrado).
const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

// AllModules devuelve los módulos en el orden en que se muestran en la consola.
func AllModules() []Module {
	return []Module{
		ModuleInventory, ModuleProducts, ModuleWarehouses, ModuleMovements,
		ModuleMovementHistory, ModuleAdmin, ModuleReports, ModuleImport, ModuleReset,
	}
}

// AllActions devuelve las acciones válidas.
func AllActions() []Action {
	return []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionExport}
}

// ParseModule valida un módulo recibido como texto.
func ParseModule(s string) (Module, bool) {
	m := Module(s)
	return m, slices.Contains(AllModules(), m)
}

// ParseAction valida una acción recibida como texto.
func ParseAction(s string) (Action, bool) {
	a := Action(s)
	return a, slices.Contains(AllActions(), a)
}

// Permission acciones permitidas sobre un módulo.
type Permission struct {
	Module  Module
	Actions []Action
}

// Allows informa si la acción está incluida en el permiso.
func (p Permission) Allows(a Action) bool {
	return slices.Contains(p.Actions, a)
}

// Role agrupa permisos por módulo. Un módulo aparece a lo sumo una vez.
type Role struct {
	ID          string
	Name        string
	Permissions []Permission
}

// PermissionFor devuelve la entrada del módulo, si existe.
func (r *Role) PermissionFor(m Module) (Permission, bool) {
	for _, p := range r.Permissions {
		if p.Module == m {
			return p, true
		}
	}
	return Permission{}, false
}
