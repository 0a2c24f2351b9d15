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

// UserUseCase administración de usuarios de la consola.
type UserUseCase struct {
	txRunner ports.TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(txRunner ports.TxRunner) *UserUseCase {
	return &UserUseCase{txRunner: txRunner}
}

// List lista los usuarios con el nombre de su rol.
func (uc *UserUseCase) List(ctx context.Context, actorID string) (*dto.UserListResponse, error) {
	out := &dto.UserListResponse{Items: []dto.UserResponse{}}
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleAdmin, entity.ActionRead); err != nil {
			return err
		}
		users, err := uow.Users().List()
		if err != nil {
			return err
		}
		roles, err := uow.Roles().List()
		if err != nil {
			return err
		}
		for _, u := range users {
			out.Items = append(out.Items, ToUserResponse(u, roles))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create da de alta un usuario; el rol debe existir.
func (uc *UserUseCase) Create(ctx context.Context, actorID string, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	user := &entity.User{ID: uuid.New().String(), Name: strings.TrimSpace(in.Name), RoleID: in.RoleID}
	return uc.save(ctx, actorID, entity.ActionCreate, user, false)
}

// Update cambia nombre y rol de un usuario existente.
func (uc *UserUseCase) Update(ctx context.Context, actorID, id string, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	user := &entity.User{ID: id, Name: strings.TrimSpace(in.Name), RoleID: in.RoleID}
	return uc.save(ctx, actorID, entity.ActionUpdate, user, true)
}

func (uc *UserUseCase) save(ctx context.Context, actorID string, action entity.Action, user *entity.User, mustExist bool) (*dto.UserResponse, error) {
	if user.Name == "" || user.RoleID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.UserResponse
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleAdmin, action); err != nil {
			return err
		}
		if mustExist {
			existing, err := uow.Users().GetByID(user.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				return domain.ErrNotFound
			}
		}
		role, err := uow.Roles().GetByID(user.RoleID)
		if err != nil {
			return err
		}
		if role == nil {
			return domain.ErrInvalidInput
		}
		if err := uow.Users().Save(user); err != nil {
			return err
		}
		out = ToUserResponse(user, []*entity.Role{role})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un usuario. El usuario de la sesión no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleAdmin, entity.ActionDelete); err != nil {
			return err
		}
		if id == actorID {
			return domain.ErrCurrentUser
		}
		return uow.Users().Delete(id)
	})
	if err == nil {
		log.Info().Str("user_id", id).Str("actor_id", actorID).Msg("usuario eliminado")
	}
	return err
}

// ToUserResponse arma la salida resolviendo el nombre del rol; vacío si el rol no existe.
func ToUserResponse(u *entity.User, roles []*entity.Role) dto.UserResponse {
	out := dto.UserResponse{ID: u.ID, Name: u.Name, RoleID: u.RoleID}
	for _, r := range roles {
		if r.ID == u.RoleID {
			out.RoleName = r.Name
			break
		}
	}
	return out
}
