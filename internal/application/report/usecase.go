package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// PDFGenerator puerto de salida para los documentos PDF.
type PDFGenerator interface {
	WarehouseReportPDF(ctx context.Context, rep WarehouseReport) ([]byte, error)
	TransferReceiptPDF(ctx context.Context, rec TransferReceipt) ([]byte, error)
}

// WorkbookExporter puerto de salida para el libro XLSX.
type WorkbookExporter interface {
	InventoryWorkbook(ctx context.Context, wb Workbook) ([]byte, error)
}

// UseCase exportaciones protegidas por permiso. Toma la foto dentro de una lectura
// consistente y genera el documento fuera de ella.
type UseCase struct {
	txRunner ports.TxRunner
	pdf      PDFGenerator
	xlsx     WorkbookExporter
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner ports.TxRunner, pdf PDFGenerator, xlsx WorkbookExporter) *UseCase {
	return &UseCase{txRunner: txRunner, pdf: pdf, xlsx: xlsx, now: time.Now}
}

// ProductsCSV exportación del catálogo con stock total.
func (uc *UseCase) ProductsCSV(ctx context.Context, actorID string) (string, error) {
	s, err := uc.snapshot(ctx, actorID, entity.ModuleReports, entity.ActionExport)
	if err != nil {
		return "", err
	}
	return FormatProductsCSV(s), nil
}

// InventoryCSV exportación completa del ledger.
func (uc *UseCase) InventoryCSV(ctx context.Context, actorID string) (string, error) {
	s, err := uc.snapshot(ctx, actorID, entity.ModuleReports, entity.ActionExport)
	if err != nil {
		return "", err
	}
	return FormatInventoryCSV(s), nil
}

// WarehousePDF reporte de inventario de un depósito existente.
func (uc *UseCase) WarehousePDF(ctx context.Context, actorID, warehouseID string) ([]byte, error) {
	s, err := uc.snapshot(ctx, actorID, entity.ModuleInventory, entity.ActionExport)
	if err != nil {
		return nil, err
	}
	if !containsWarehouse(s, warehouseID) {
		return nil, domain.ErrNotFound
	}
	out, err := uc.pdf.WarehouseReportPDF(ctx, BuildWarehouseReport(s, warehouseID, uc.now()))
	if err != nil {
		return nil, fmt.Errorf("reporte de depósito: %w", err)
	}
	return out, nil
}

// TransferPDF comprobante de un movimiento del historial.
func (uc *UseCase) TransferPDF(ctx context.Context, actorID, transferID string) ([]byte, error) {
	s, err := uc.snapshot(ctx, actorID, entity.ModuleMovementHistory, entity.ActionExport)
	if err != nil {
		return nil, err
	}
	rec, ok := BuildTransferReceipt(s, transferID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	out, err := uc.pdf.TransferReceiptPDF(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("comprobante de movimiento: %w", err)
	}
	return out, nil
}

// InventoryXLSX libro con hojas de productos e inventario.
func (uc *UseCase) InventoryXLSX(ctx context.Context, actorID string) ([]byte, error) {
	s, err := uc.snapshot(ctx, actorID, entity.ModuleReports, entity.ActionExport)
	if err != nil {
		return nil, err
	}
	out, err := uc.xlsx.InventoryWorkbook(ctx, BuildWorkbook(s, uc.now()))
	if err != nil {
		return nil, fmt.Errorf("libro de inventario: %w", err)
	}
	return out, nil
}

func (uc *UseCase) snapshot(ctx context.Context, actorID string, module entity.Module, action entity.Action) (Snapshot, error) {
	var s Snapshot
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, module, action); err != nil {
			return err
		}
		var err error
		if s.Products, err = uow.Products().List(); err != nil {
			return err
		}
		if s.Warehouses, err = uow.Warehouses().List(); err != nil {
			return err
		}
		if s.Transfers, err = uow.Transfers().List(); err != nil {
			return err
		}
		s.Stock = uow.Stock().Entries()
		return nil
	})
	return s, err
}

func containsWarehouse(s Snapshot, id string) bool {
	for _, w := range s.Warehouses {
		if w.ID == id {
			return true
		}
	}
	return false
}
