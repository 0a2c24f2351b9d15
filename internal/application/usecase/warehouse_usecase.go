package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para depósitos.
type WarehouseUseCase struct {
	txRunner ports.TxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(txRunner ports.TxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{txRunner: txRunner}
}

// Create crea un nuevo depósito. El nombre es único sin distinguir mayúsculas,
// ya que la importación CSV resuelve depósitos por nombre.
func (uc *WarehouseUseCase) Create(ctx context.Context, actorID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleWarehouses, entity.ActionCreate); err != nil {
			return err
		}
		existing, err := uow.Warehouses().GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return uow.Warehouses().Save(warehouse)
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene un depósito por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, actorID, id string) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleWarehouses, entity.ActionRead); err != nil {
			return err
		}
		w, err := uow.Warehouses().GetByID(id)
		if err != nil {
			return err
		}
		if w == nil {
			return domain.ErrNotFound
		}
		out = toWarehouseResponse(w)
		return nil
	})
	return out, err
}

// Update renombra un depósito.
func (uc *WarehouseUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleWarehouses, entity.ActionUpdate); err != nil {
			return err
		}
		warehouse, err := uow.Warehouses().GetByID(id)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			other, err := uow.Warehouses().GetByName(name)
			if err != nil {
				return err
			}
			if other != nil && other.ID != warehouse.ID {
				return domain.ErrDuplicate
			}
			warehouse.Name = name
		}
		warehouse.UpdatedAt = time.Now()
		if err := uow.Warehouses().Save(warehouse); err != nil {
			return err
		}
		out = toWarehouseResponse(warehouse)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista los depósitos en orden de alta.
func (uc *WarehouseUseCase) List(ctx context.Context, actorID string) (*dto.WarehouseListResponse, error) {
	out := &dto.WarehouseListResponse{Items: []dto.WarehouseResponse{}}
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleWarehouses, entity.ActionRead); err != nil {
			return err
		}
		list, err := uow.Warehouses().List()
		if err != nil {
			return err
		}
		for _, w := range list {
			out.Items = append(out.Items, *toWarehouseResponse(w))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el depósito y su stock. Los movimientos que lo referencian quedan en el historial.
func (uc *WarehouseUseCase) Delete(ctx context.Context, actorID, id string) error {
	var removed int
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleWarehouses, entity.ActionDelete); err != nil {
			return err
		}
		if err := uow.Warehouses().Delete(id); err != nil {
			return err
		}
		removed = uow.Stock().RemoveWarehouse(id)
		return nil
	})
	if err == nil {
		log.Info().Str("warehouse_id", id).Str("actor_id", actorID).Int("stock_entries", removed).Msg("depósito eliminado")
	}
	return err
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
