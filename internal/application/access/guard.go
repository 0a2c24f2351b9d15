// Package access es el único punto de la aplicación que decide permisos. Los casos de uso
// llaman a RequireIn al inicio de cada operación, dentro de la misma transacción que
// luego modifican, de modo que la verificación y la escritura ven el mismo estado.
package access

import (
	"context"

	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/permission"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// Guard responde consultas de permisos sobre el estado confirmado.
type Guard struct {
	tx ports.TxRunner
}

// NewGuard construye el guard.
func NewGuard(tx ports.TxRunner) *Guard {
	return &Guard{tx: tx}
}

// HasPermission informa si el usuario puede ejecutar la acción sobre el módulo.
// Un userID vacío o inexistente devuelve false sin error.
func (g *Guard) HasPermission(ctx context.Context, userID string, module entity.Module, action entity.Action) (bool, error) {
	var allowed bool
	err := g.tx.View(ctx, func(uow repository.UnitOfWork) error {
		user, lookup, err := load(uow, userID)
		if err != nil {
			return err
		}
		allowed = permission.HasPermission(user, lookup, module, action)
		return nil
	})
	return allowed, err
}

// Permissions devuelve el usuario y sus acciones permitidas por módulo.
func (g *Guard) Permissions(ctx context.Context, userID string) (*entity.User, map[entity.Module][]entity.Action, error) {
	var (
		user  *entity.User
		perms map[entity.Module][]entity.Action
	)
	err := g.tx.View(ctx, func(uow repository.UnitOfWork) error {
		u, lookup, err := load(uow, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUnauthorized
		}
		user, perms = u, permission.Resolve(u, lookup)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, perms, nil
}

// RequireIn verifica el permiso dentro de una transacción abierta. Devuelve
// ErrUnauthorized sin usuario válido y ErrForbidden si falta el permiso.
func RequireIn(uow repository.UnitOfWork, userID string, module entity.Module, action entity.Action) error {
	user, lookup, err := load(uow, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnauthorized
	}
	if !permission.HasPermission(user, lookup, module, action) {
		return domain.ErrForbidden
	}
	return nil
}

func load(uow repository.UnitOfWork, userID string) (*entity.User, permission.RoleLookup, error) {
	if userID == "" {
		return nil, nil, nil
	}
	user, err := uow.Users().GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	roles, err := uow.Roles().List()
	if err != nil {
		return nil, nil, err
	}
	return user, permission.FromRoles(roles), nil
}
