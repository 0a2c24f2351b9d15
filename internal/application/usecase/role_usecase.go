package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// RoleUseCase administración de roles y su tabla de permisos.
type RoleUseCase struct {
	txRunner ports.TxRunner
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(txRunner ports.TxRunner) *RoleUseCase {
	return &RoleUseCase{txRunner: txRunner}
}

// List lista los roles.
func (uc *RoleUseCase) List(ctx context.Context, actorID string) (*dto.RoleListResponse, error) {
	out := &dto.RoleListResponse{Items: []dto.RoleResponse{}}
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleAdmin, entity.ActionRead); err != nil {
			return err
		}
		roles, err := uow.Roles().List()
		if err != nil {
			return err
		}
		for _, r := range roles {
			out.Items = append(out.Items, *toRoleResponse(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un rol.
func (uc *RoleUseCase) Create(ctx context.Context, actorID string, in dto.SaveRoleRequest) (*dto.RoleResponse, error) {
	role, err := buildRole(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleAdmin, entity.ActionCreate); err != nil {
			return err
		}
		return uow.Roles().Save(role)
	})
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Update reemplaza nombre y permisos de un rol existente. Los usuarios que lo tienen
// ven el cambio en su próxima verificación.
func (uc *RoleUseCase) Update(ctx context.Context, actorID, id string, in dto.SaveRoleRequest) (*dto.RoleResponse, error) {
	role, err := buildRole(id, in)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleAdmin, entity.ActionUpdate); err != nil {
			return err
		}
		existing, err := uow.Roles().GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return uow.Roles().Save(role)
	})
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete elimina un rol. Si algún usuario lo tiene asignado devuelve domain.ErrRoleInUse.
func (uc *RoleUseCase) Delete(ctx context.Context, actorID, id string) error {
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleAdmin, entity.ActionDelete); err != nil {
			return err
		}
		inUse, err := uow.Users().ExistsWithRole(id)
		if err != nil {
			return err
		}
		if inUse {
			return domain.ErrRoleInUse
		}
		return uow.Roles().Delete(id)
	})
	if err == nil {
		log.Info().Str("role_id", id).Str("actor_id", actorID).Msg("rol eliminado")
	}
	return err
}

// buildRole valida módulos y acciones contra los conjuntos cerrados. Un módulo repetido es inválido.
func buildRole(id string, in dto.SaveRoleRequest) (*entity.Role, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := &entity.Role{ID: id, Name: name, Permissions: make([]entity.Permission, 0, len(in.Permissions))}
	seen := map[entity.Module]bool{}
	for _, p := range in.Permissions {
		module, ok := entity.ParseModule(p.Module)
		if !ok || seen[module] {
			return nil, domain.ErrInvalidInput
		}
		seen[module] = true
		perm := entity.Permission{Module: module}
		for _, a := range p.Actions {
			action, ok := entity.ParseAction(a)
			if !ok {
				return nil, domain.ErrInvalidInput
			}
			if !perm.Allows(action) {
				perm.Actions = append(perm.Actions, action)
			}
		}
		if len(perm.Actions) > 0 {
			role.Permissions = append(role.Permissions, perm)
		}
	}
	return role, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	perms := make([]dto.PermissionDTO, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, dto.PermissionDTO{Module: string(p.Module), Actions: actionStrings(p.Actions)})
	}
	return &dto.RoleResponse{ID: r.ID, Name: r.Name, Permissions: perms}
}

func actionStrings(actions []entity.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a))
	}
	return out
}
