package inventory

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// StockUseCase consultas y ajustes manuales del ledger.
type StockUseCase struct {
	txRunner ports.TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner ports.TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// ListInventory devuelve todas las entradas del ledger; con warehouseID filtra por depósito.
func (uc *StockUseCase) ListInventory(ctx context.Context, actorID, warehouseID string) (*dto.InventoryResponse, error) {
	out := &dto.InventoryResponse{Items: []dto.StockResponse{}}
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleInventory, entity.ActionRead); err != nil {
			return err
		}
		entries := uow.Stock().Entries()
		if warehouseID != "" {
			entries = uow.Stock().EntriesByWarehouse(warehouseID)
		}
		for _, e := range entries {
			out.Items = append(out.Items, toStockResponse(e))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuantity cantidad de un producto en un depósito; 0 si no hay entrada.
func (uc *StockUseCase) GetQuantity(ctx context.Context, actorID, productID, warehouseID string) (*dto.StockResponse, error) {
	var out dto.StockResponse
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleInventory, entity.ActionRead); err != nil {
			return err
		}
		out = dto.StockResponse{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    uow.Stock().Quantity(productID, warehouseID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetQuantity reemplaza la cantidad de una entrada (ajuste de inventario).
func (uc *StockUseCase) SetQuantity(ctx context.Context, actorID string, req dto.SetStockRequest) (*dto.StockResponse, error) {
	if req.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleInventory, entity.ActionUpdate); err != nil {
			return err
		}
		p, err := uow.Products().GetByID(req.ProductID)
		if err != nil {
			return err
		}
		w, err := uow.Warehouses().GetByID(req.WarehouseID)
		if err != nil {
			return err
		}
		if p == nil || w == nil {
			return domain.ErrNotFound
		}
		return uow.Stock().Set(req.ProductID, req.WarehouseID, req.Quantity)
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("actor_id", actorID).
		Str("product_id", req.ProductID).
		Str("warehouse_id", req.WarehouseID).
		Int("quantity", req.Quantity).
		Msg("stock ajustado")
	return &dto.StockResponse{ProductID: req.ProductID, WarehouseID: req.WarehouseID, Quantity: req.Quantity}, nil
}

func toStockResponse(s entity.Stock) dto.StockResponse {
	return dto.StockResponse{ProductID: s.ProductID, WarehouseID: s.WarehouseID, Quantity: s.Quantity}
}
