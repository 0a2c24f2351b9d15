package inventory

import (
	"context"
	"errors"
	"fmt"
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

// ImportUseCase reconcilia un CSV contra el catálogo y el ledger. El archivo se aplica
// completo o no se aplica: cualquier error de fila descarta todo.
type ImportUseCase struct {
	txRunner ports.TxRunner
	metrics  Metrics
	now      func() time.Time
	newID    func() string
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner ports.TxRunner, metrics Metrics) *ImportUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &ImportUseCase{
		txRunner: txRunner,
		metrics:  metrics,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// ImportCSV valida y confirma la importación de un texto CSV.
func (uc *ImportUseCase) ImportCSV(ctx context.Context, actorID, text string) (*dto.ImportResult, error) {
	return uc.commit(ctx, actorID, func() ([]ImportRow, error) { return ParseImportCSV(text) })
}

// ImportRecords igual que ImportCSV para registros ya separados (planilla XLSX).
func (uc *ImportUseCase) ImportRecords(ctx context.Context, actorID string, records [][]string) (*dto.ImportResult, error) {
	return uc.commit(ctx, actorID, func() ([]ImportRow, error) { return ParseImportRecords(records) })
}

func (uc *ImportUseCase) commit(ctx context.Context, actorID string, parse func() ([]ImportRow, error)) (*dto.ImportResult, error) {
	var result *dto.ImportResult
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		r, err := uc.reconcileIn(uow, actorID, parse)
		result = r
		return err
	})
	if err != nil {
		uc.metrics.ImportRejected(rejectReason(err))
		log.Warn().Err(err).Str("actor_id", actorID).Msg("importación rechazada")
		return nil, err
	}
	uc.metrics.ImportCompleted(result.RowsProcessed, result.UnitsAdded)
	log.Info().
		Str("actor_id", actorID).
		Int("rows", result.RowsProcessed).
		Int("products_created", result.ProductsCreated).
		Int("products_updated", result.ProductsUpdated).
		Int("warehouses_created", result.WarehousesCreated).
		Int("units", result.UnitsAdded).
		Msg("importación completada")
	return result, nil
}

// PreviewCSV calcula el resumen que produciría ImportCSV sin confirmar nada.
func (uc *ImportUseCase) PreviewCSV(ctx context.Context, actorID, text string) (*dto.ImportResult, error) {
	var result *dto.ImportResult
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		r, err := uc.reconcileIn(uow, actorID, func() ([]ImportRow, error) { return ParseImportCSV(text) })
		result = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ImportUseCase) reconcileIn(uow repository.UnitOfWork, actorID string, parse func() ([]ImportRow, error)) (*dto.ImportResult, error) {
	if err := access.RequireIn(uow, actorID, entity.ModuleImport, entity.ActionCreate); err != nil {
		return nil, err
	}
	rows, err := parse()
	if err != nil {
		return nil, err
	}
	return reconcile(uow, rows, uc.now(), uc.newID)
}

// reconcile aplica las filas en orden: producto por SKU (se pisan nombre y precio),
// depósito por nombre, y la cantidad se suma a la existente.
func reconcile(uow repository.UnitOfWork, rows []ImportRow, now time.Time, newID func() string) (*dto.ImportResult, error) {
	result := &dto.ImportResult{RowsProcessed: len(rows)}
	created := map[string]bool{}
	updated := map[string]bool{}

	for _, row := range rows {
		product, err := uow.Products().GetBySKU(row.SKU)
		if err != nil {
			return nil, err
		}
		if product == nil {
			product = &entity.Product{
				ID:        newID(),
				SKU:       row.SKU,
				Name:      row.Name,
				Price:     row.Price,
				CreatedAt: now,
				UpdatedAt: now,
			}
			created[product.ID] = true
		} else {
			product.Name = row.Name
			product.Price = row.Price
			product.UpdatedAt = now
			if !created[product.ID] {
				updated[product.ID] = true
			}
		}
		if err := uow.Products().Save(product); err != nil {
			return nil, err
		}

		warehouse, err := uow.Warehouses().GetByName(row.WarehouseName)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			warehouse = &entity.Warehouse{ID: newID(), Name: row.WarehouseName, CreatedAt: now, UpdatedAt: now}
			if err := uow.Warehouses().Save(warehouse); err != nil {
				return nil, err
			}
			result.WarehousesCreated++
		}

		if _, err := uow.Stock().Adjust(product.ID, warehouse.ID, row.Quantity); err != nil {
			if errors.Is(err, domain.ErrQuantityOverflow) {
				return nil, quantityOverflow(row, "La cantidad '%d' supera el stock máximo admitido para el producto en el depósito.")
			}
			return nil, err
		}
		units, ok := entity.AddQuantity(result.UnitsAdded, row.Quantity)
		if !ok {
			return nil, quantityOverflow(row, "La cantidad '%d' hace que el total del archivo supere el máximo admitido.")
		}
		result.UnitsAdded = units
	}
	result.ProductsCreated = len(created)
	result.ProductsUpdated = len(updated)
	return result, nil
}

func quantityOverflow(row ImportRow, format string) *domain.FormatError {
	return &domain.FormatError{Row: row.Line, Field: "cantidad", Reason: fmt.Sprintf(format, row.Quantity)}
}
