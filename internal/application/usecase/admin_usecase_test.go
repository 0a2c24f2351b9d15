package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/usecase"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

func TestRole_CrearValidaModulosYAcciones(t *testing.T) {
	uc := usecase.NewRoleUseCase(seededStore(t))

	out, err := uc.Create(context.Background(), adminID, dto.SaveRoleRequest{
		Name: "Auditor",
		Permissions: []dto.PermissionDTO{
			{Module: "movementHistory", Actions: []string{"read", "export", "read"}},
			{Module: "reports", Actions: []string{}},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Permissions, 1, "los módulos sin acciones se descartan")
	assert.Equal(t, []string{"read", "export"}, out.Permissions[0].Actions)

	invalid := []dto.SaveRoleRequest{
		{Name: "", Permissions: nil},
		{Name: "X", Permissions: []dto.PermissionDTO{{Module: "billing", Actions: []string{"read"}}}},
		{Name: "X", Permissions: []dto.PermissionDTO{{Module: "products", Actions: []string{"approve"}}}},
		{Name: "X", Permissions: []dto.PermissionDTO{
			{Module: "products", Actions: []string{"read"}},
			{Module: "products", Actions: []string{"create"}},
		}},
	}
	for _, in := range invalid {
		_, err := uc.Create(context.Background(), adminID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRole_EnUsoNoSeBorra(t *testing.T) {
	uc := usecase.NewRoleUseCase(seededStore(t))

	err := uc.Delete(context.Background(), adminID, "role_operator")
	assert.ErrorIs(t, err, domain.ErrRoleInUse)
	assert.True(t, errors.Is(err, domain.ErrReferentialConflict))
}

func TestRole_CambioDePermisosSeVeEnLaSiguienteVerificacion(t *testing.T) {
	store := seededStore(t)
	uc := usecase.NewRoleUseCase(store)
	guard := access.NewGuard(store)

	ok, err := guard.HasPermission(context.Background(), operatorID, entity.ModuleProducts, entity.ActionRead)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = uc.Update(context.Background(), adminID, "role_operator", dto.SaveRoleRequest{
		Name:        "Operator",
		Permissions: []dto.PermissionDTO{{Module: "products", Actions: []string{"read"}}},
	})
	require.NoError(t, err)

	ok, err = guard.HasPermission(context.Background(), operatorID, entity.ModuleProducts, entity.ActionRead)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUser_NoSePuedeBorrarAsiMismo(t *testing.T) {
	uc := usecase.NewUserUseCase(seededStore(t))

	err := uc.Delete(context.Background(), adminID, adminID)
	assert.ErrorIs(t, err, domain.ErrCurrentUser)
	assert.ErrorIs(t, err, domain.ErrReferentialConflict)

	require.NoError(t, uc.Delete(context.Background(), adminID, operatorID))
	list, err := uc.List(context.Background(), adminID)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestUser_RolInexistenteEsInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(seededStore(t))

	_, err := uc.Create(context.Background(), adminID, dto.SaveUserRequest{Name: "Nuevo", RoleID: "role_fantasma"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(context.Background(), adminID, dto.SaveUserRequest{Name: "Nuevo", RoleID: "role_manager"})
	require.NoError(t, err)
	assert.Equal(t, "Manager", out.RoleName)
}

func TestUser_SoloAdminAdministra(t *testing.T) {
	uc := usecase.NewUserUseCase(seededStore(t))

	_, err := uc.List(context.Background(), managerID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdmin_ReiniciarConservaRolesYUsuarios(t *testing.T) {
	store := seededStore(t)
	uc := usecase.NewAdminUseCase(store)

	assert.ErrorIs(t, uc.ResetData(context.Background(), managerID), domain.ErrForbidden)
	require.NoError(t, uc.ResetData(context.Background(), adminID))

	require.NoError(t, store.View(context.Background(), func(uow repository.UnitOfWork) error {
		products, _ := uow.Products().List()
		warehouses, _ := uow.Warehouses().List()
		transfers, _ := uow.Transfers().List()
		roles, _ := uow.Roles().List()
		users, _ := uow.Users().List()
		assert.Empty(t, products)
		assert.Empty(t, warehouses)
		assert.Empty(t, transfers)
		assert.Empty(t, uow.Stock().Entries())
		assert.Len(t, roles, 3)
		assert.Len(t, users, 3)
		return nil
	}))
}
