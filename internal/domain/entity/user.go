package entity

// User representa un usuario de la consola. RoleID apunta a un Role;
// una referencia colgante se trata como "sin permisos".
type User struct {
	ID     string
	Name   string
	RoleID string
}
