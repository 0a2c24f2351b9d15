package access_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/memory"
)

func newGuard(t *testing.T) (*access.Guard, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Load(context.Background(), memory.DefaultSeed(time.Now())))
	return access.NewGuard(store), store
}

func TestGuard_HasPermissionPorRol(t *testing.T) {
	guard, _ := newGuard(t)
	cases := []struct {
		user   string
		module entity.Module
		action entity.Action
		want   bool
	}{
		{"user_1", entity.ModuleReset, entity.ActionDelete, true},
		{"user_2", entity.ModuleProducts, entity.ActionUpdate, true},
		{"user_2", entity.ModuleProducts, entity.ActionDelete, false},
		{"user_3", entity.ModuleMovements, entity.ActionCreate, true},
		{"user_3", entity.ModuleAdmin, entity.ActionRead, false},
		{"", entity.ModuleInventory, entity.ActionRead, false},
		{"user_9", entity.ModuleInventory, entity.ActionRead, false},
	}
	for _, tc := range cases {
		got, err := guard.HasPermission(context.Background(), tc.user, tc.module, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s/%s", tc.user, tc.module, tc.action)
	}
}

func requireIn(t *testing.T, store *memory.Store, userID string, module entity.Module, action entity.Action) error {
	t.Helper()
	return store.View(context.Background(), func(uow repository.UnitOfWork) error {
		return access.RequireIn(uow, userID, module, action)
	})
}

func TestRequireIn_DistingueSesionYPermiso(t *testing.T) {
	_, store := newGuard(t)

	assert.NoError(t, requireIn(t, store, "user_1", entity.ModuleAdmin, entity.ActionDelete))
	assert.ErrorIs(t, requireIn(t, store, "user_2", entity.ModuleAdmin, entity.ActionRead), domain.ErrForbidden)
	assert.ErrorIs(t, requireIn(t, store, "user_9", entity.ModuleAdmin, entity.ActionRead), domain.ErrUnauthorized)
	assert.ErrorIs(t, requireIn(t, store, "", entity.ModuleAdmin, entity.ActionRead), domain.ErrUnauthorized)
}

func TestGuard_RolBorradoNoConcedeNada(t *testing.T) {
	guard, store := newGuard(t)
	require.NoError(t, store.Run(context.Background(), func(uow repository.UnitOfWork) error {
		return uow.Users().Save(&entity.User{ID: "user_4", Name: "Huérfano", RoleID: "role_borrado"})
	}))

	assert.ErrorIs(t, requireIn(t, store, "user_4", entity.ModuleInventory, entity.ActionRead), domain.ErrForbidden)
	_, perms, err := guard.Permissions(context.Background(), "user_4")
	require.NoError(t, err)
	assert.Empty(t, perms)
}

func TestGuard_PermissionsResuelveModulos(t *testing.T) {
	guard, _ := newGuard(t)

	user, perms, err := guard.Permissions(context.Background(), "user_3")
	require.NoError(t, err)
	assert.Equal(t, "Operator User", user.Name)
	assert.ElementsMatch(t, []entity.Module{
		entity.ModuleInventory, entity.ModuleMovements, entity.ModuleMovementHistory, entity.ModuleReports,
	}, keys(perms))

	_, _, err = guard.Permissions(context.Background(), "user_9")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func keys(m map[entity.Module][]entity.Action) []entity.Module {
	out := make([]entity.Module, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
