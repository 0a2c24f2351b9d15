package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/application/usecase"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
	"github.com/jhoicas/Deposito-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase sesión de la consola: el operador elige un usuario de la lista, sin credenciales.
type AuthUseCase struct {
	txRunner ports.TxRunner
	guard    *access.Guard
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner ports.TxRunner, guard *access.Guard, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, guard: guard, jwtCfg: jwtCfg}
}

// LoginUsers lista los usuarios seleccionables en la pantalla de ingreso.
func (uc *AuthUseCase) LoginUsers(ctx context.Context) (*dto.UserListResponse, error) {
	out := &dto.UserListResponse{Items: []dto.UserResponse{}}
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.Users().List()
		if err != nil {
			return err
		}
		roles, err := uow.Roles().List()
		if err != nil {
			return err
		}
		for _, u := range users {
			out.Items = append(out.Items, usecase.ToUserResponse(u, roles))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Login emite un token para el usuario elegido. Un usuario inexistente devuelve ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		user  *entity.User
		roles []*entity.Role
	)
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		u, err := uow.Users().GetByID(in.UserID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUnauthorized
		}
		user = u
		roles, err = uow.Roles().List()
		return err
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RoleID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", user.ID).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token: token,
		User:  usecase.ToUserResponse(user, roles),
	}, nil
}

// Session devuelve el usuario de la sesión y sus permisos resueltos por módulo.
func (uc *AuthUseCase) Session(ctx context.Context, userID string) (*dto.SessionResponse, error) {
	user, perms, err := uc.guard.Permissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	var roles []*entity.Role
	err = uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		r, err := uow.Roles().GetByID(user.RoleID)
		if err != nil {
			return err
		}
		if r != nil {
			roles = append(roles, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := &dto.SessionResponse{
		User:        usecase.ToUserResponse(user, roles),
		Permissions: make(map[string][]string, len(perms)),
	}
	for m, actions := range perms {
		list := make([]string, 0, len(actions))
		for _, a := range actions {
			list = append(list, string(a))
		}
		out.Permissions[string(m)] = list
	}
	return out, nil
}
