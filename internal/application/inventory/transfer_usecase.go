package inventory

import (
	"context"
	"errors"
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

// TransferUseCase registra movimientos de stock entre depósitos de forma atómica:
// todas las líneas se aplican sobre una copia del ledger y se confirman juntas.
type TransferUseCase struct {
	txRunner ports.TxRunner
	metrics  Metrics
	now      func() time.Time
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner ports.TxRunner, metrics Metrics) *TransferUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &TransferUseCase{txRunner: txRunner, metrics: metrics, now: time.Now}
}

// TransferInput entrada del motor: destino único y líneas con su depósito origen.
type TransferInput struct {
	ActorID                string
	DestinationWarehouseID string
	Items                  []entity.TransferItem
}

// ApplyTransfer valida, aplica las líneas en orden y agrega el movimiento al historial.
// Si alguna línea no tiene stock suficiente devuelve *domain.StockError y el ledger
// queda exactamente como estaba.
func (uc *TransferUseCase) ApplyTransfer(ctx context.Context, in TransferInput) (*dto.TransferResponse, error) {
	var created *entity.StockTransfer
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, in.ActorID, entity.ModuleMovements, entity.ActionCreate); err != nil {
			return err
		}
		if err := validateTransfer(in.DestinationWarehouseID, in.Items); err != nil {
			return err
		}
		if err := checkReferences(uow, in.DestinationWarehouseID, in.Items); err != nil {
			return err
		}
		if err := applyItems(uow.Stock(), in.DestinationWarehouseID, in.Items); err != nil {
			return err
		}
		created = &entity.StockTransfer{
			ID:                     uuid.New().String(),
			Date:                   uc.now(),
			DestinationWarehouseID: in.DestinationWarehouseID,
			Items:                  append([]entity.TransferItem(nil), in.Items...),
			Status:                 entity.TransferStatusCompleted,
			CreatedBy:              in.ActorID,
		}
		return uow.Transfers().Append(created)
	})
	if err != nil {
		uc.metrics.TransferRejected(rejectReason(err))
		log.Warn().Err(err).
			Str("actor_id", in.ActorID).
			Str("destination", in.DestinationWarehouseID).
			Int("items", len(in.Items)).
			Msg("movimiento de stock rechazado")
		return nil, err
	}
	uc.metrics.TransferApplied(len(created.Items), created.TotalUnits())
	log.Info().
		Str("transfer_id", created.ID).
		Str("actor_id", in.ActorID).
		Int("items", len(created.Items)).
		Int("units", created.TotalUnits()).
		Msg("movimiento de stock completado")
	return toTransferResponse(created), nil
}

// ApplyTransferFromRequest adapta el request HTTP al caso de uso ApplyTransfer.
func (uc *TransferUseCase) ApplyTransferFromRequest(ctx context.Context, actorID string, req dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	items := make([]entity.TransferItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.TransferItem{
			ProductID:         it.ProductID,
			SourceWarehouseID: it.SourceWarehouseID,
			Quantity:          it.Quantity,
		})
	}
	return uc.ApplyTransfer(ctx, TransferInput{
		ActorID:                actorID,
		DestinationWarehouseID: req.DestinationWarehouseID,
		Items:                  items,
	})
}

// ListTransfers devuelve el historial, más reciente primero.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, actorID string) (*dto.TransferListResponse, error) {
	var out dto.TransferListResponse
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleMovementHistory, entity.ActionRead); err != nil {
			return err
		}
		list, err := uow.Transfers().List()
		if err != nil {
			return err
		}
		out.Items = make([]dto.TransferResponse, 0, len(list))
		for _, t := range list {
			out.Items = append(out.Items, *toTransferResponse(t))
		}
		out.Total = len(out.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransfer obtiene un movimiento del historial.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, actorID, transferID string) (*dto.TransferResponse, error) {
	var out *dto.TransferResponse
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleMovementHistory, entity.ActionRead); err != nil {
			return err
		}
		t, err := uow.Transfers().GetByID(transferID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		out = toTransferResponse(t)
		return nil
	})
	return out, err
}

// DeleteTransfer quita el movimiento del historial. No revierte el stock:
// el historial es un registro de auditoría, no la fuente de las cantidades.
func (uc *TransferUseCase) DeleteTransfer(ctx context.Context, actorID, transferID string) error {
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleMovementHistory, entity.ActionDelete); err != nil {
			return err
		}
		return uow.Transfers().Delete(transferID)
	})
	if err == nil {
		log.Info().Str("transfer_id", transferID).Str("actor_id", actorID).Msg("movimiento eliminado del historial")
	}
	return err
}

// validateTransfer rechaza destinos vacíos, movimientos sin líneas y líneas cuyo origen
// es el propio destino, antes de tocar el ledger.
func validateTransfer(destinationID string, items []entity.TransferItem) error {
	if destinationID == "" || len(items) == 0 {
		return domain.ErrInvalidDestination
	}
	for _, it := range items {
		if it.ProductID == "" || it.SourceWarehouseID == "" || it.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if it.SourceWarehouseID == destinationID {
			return domain.ErrInvalidDestination
		}
	}
	return nil
}

// checkReferences exige que existan el destino y los productos, para no crear
// entradas del ledger con referencias colgantes.
func checkReferences(uow repository.UnitOfWork, destinationID string, items []entity.TransferItem) error {
	dest, err := uow.Warehouses().GetByID(destinationID)
	if err != nil {
		return err
	}
	if dest == nil {
		return domain.ErrNotFound
	}
	for _, it := range items {
		p, err := uow.Products().GetByID(it.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// applyItems resta del origen y suma en el destino línea por línea. Líneas repetidas
// se aplican en secuencia, cada una contra el resultado de la anterior.
func applyItems(stock repository.StockRepository, destinationID string, items []entity.TransferItem) error {
	for _, it := range items {
		if _, err := stock.Adjust(it.ProductID, it.SourceWarehouseID, -it.Quantity); err != nil {
			return err
		}
		if _, err := stock.Adjust(it.ProductID, destinationID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidDestination):
		return "invalid_destination"
	case errors.Is(err, domain.ErrQuantityOverflow):
		return "quantity_overflow"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return "forbidden"
	case errors.Is(err, domain.ErrFormat):
		return "format"
	default:
		return "internal"
	}
}

func toTransferResponse(t *entity.StockTransfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	items := make([]dto.TransferItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TransferItemResponse{
			ProductID:         it.ProductID,
			SourceWarehouseID: it.SourceWarehouseID,
			Quantity:          it.Quantity,
		})
	}
	return &dto.TransferResponse{
		ID:                     t.ID,
		Date:                   t.Date,
		DestinationWarehouseID: t.DestinationWarehouseID,
		Items:                  items,
		Status:                 t.Status,
		CreatedBy:              t.CreatedBy,
	}
}
