package entity

// Role es el nivel de autorización de un usuario. Conjunto cerrado:
// cualquier otro valor no tiene ningún permiso.
type Role string

// Roles válidos para User.
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
)

// Permission es una capacidad nominal evaluada contra el rol del usuario.
type Permission string

// Permisos conocidos de la aplicación.
const (
	PermissionManageUsers     Permission = "manage_users"
	PermissionScanItems       Permission = "scan_items"
	PermissionViewInventory   Permission = "view_inventory"
	PermissionManageInventory Permission = "manage_inventory"
)

// Valid indica si el rol pertenece al conjunto enumerado.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator:
		return true
	}
	return false
}

// Can evalúa la tabla fija de permisos por rol:
//   - admin: todo
//   - manager: todo excepto manage_users
//   - operator: solo scan_items y view_inventory
func (r Role) Can(p Permission) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleManager:
		return p != PermissionManageUsers
	case RoleOperator:
		return p == PermissionScanItems || p == PermissionViewInventory
	default:
		return false
	}
}
