package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleOperator.Valid())
	assert.False(t, Role("viewer").Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("Admin").Valid(), "los roles son sensibles a mayúsculas")
}

func TestRole_Can(t *testing.T) {
	// admin: todo
	assert.True(t, RoleAdmin.Can(PermissionManageUsers))
	assert.True(t, RoleAdmin.Can(Permission("cualquier_cosa")))

	// manager: todo excepto manage_users
	assert.False(t, RoleManager.Can(PermissionManageUsers))
	assert.True(t, RoleManager.Can(PermissionScanItems))
	assert.True(t, RoleManager.Can(PermissionViewInventory))
	assert.True(t, RoleManager.Can(PermissionManageInventory))

	// operator: solo escanear y ver inventario
	assert.True(t, RoleOperator.Can(PermissionScanItems))
	assert.True(t, RoleOperator.Can(PermissionViewInventory))
	assert.False(t, RoleOperator.Can(PermissionManageUsers))
	assert.False(t, RoleOperator.Can(PermissionManageInventory))

	// rol fuera del conjunto: nada
	assert.False(t, Role("viewer").Can(PermissionScanItems))
	assert.False(t, Role("").Can(PermissionViewInventory))
}
