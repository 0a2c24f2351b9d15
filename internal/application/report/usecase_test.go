package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/application/report"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/memory"
)

type capturePDF struct {
	warehouse report.WarehouseReport
	receipt   report.TransferReceipt
}

func (c *capturePDF) WarehouseReportPDF(_ context.Context, rep report.WarehouseReport) ([]byte, error) {
	c.warehouse = rep
	return []byte("%PDF-reporte"), nil
}

func (c *capturePDF) TransferReceiptPDF(_ context.Context, rec report.TransferReceipt) ([]byte, error) {
	c.receipt = rec
	return []byte("%PDF-comprobante"), nil
}

type captureXLSX struct{ wb report.Workbook }

func (c *captureXLSX) InventoryWorkbook(_ context.Context, wb report.Workbook) ([]byte, error) {
	c.wb = wb
	return []byte("PK"), nil
}

func newReportUseCase(t *testing.T) (*report.UseCase, *memory.Store, *capturePDF, *captureXLSX) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Load(context.Background(), memory.DefaultSeed(time.Now())))
	pdf, xlsx := &capturePDF{}, &captureXLSX{}
	return report.NewUseCase(store, pdf, xlsx), store, pdf, xlsx
}

func TestReportUseCase_CSVRequiereExportar(t *testing.T) {
	uc, _, _, _ := newReportUseCase(t)

	out, err := uc.ProductsCSV(context.Background(), "user_3")
	require.NoError(t, err)
	assert.Contains(t, out, "HDW-001,Heavy Duty Wrench,49.99,225")

	_, err = uc.InventoryCSV(context.Background(), "user_inexistente")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestReportUseCase_WarehousePDF(t *testing.T) {
	uc, _, pdf, _ := newReportUseCase(t)

	out, err := uc.WarehousePDF(context.Background(), "user_2", "wh_1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-reporte", string(out))
	assert.Equal(t, "Main Distribution Center", pdf.warehouse.WarehouseName)
	assert.Equal(t, 450, pdf.warehouse.TotalUnits)

	_, err = uc.WarehousePDF(context.Background(), "user_2", "wh_9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportUseCase_TransferPDF(t *testing.T) {
	uc, store, pdf, _ := newReportUseCase(t)
	transfers := inventory.NewTransferUseCase(store, nil)

	moved, err := transfers.ApplyTransfer(context.Background(), inventory.TransferInput{
		ActorID:                "user_3",
		DestinationWarehouseID: "wh_1",
		Items:                  []entity.TransferItem{{ProductID: "prod_3", SourceWarehouseID: "wh_2", Quantity: 40}},
	})
	require.NoError(t, err)

	_, err = uc.TransferPDF(context.Background(), "user_3", moved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main Distribution Center", pdf.receipt.DestinationName)
	require.Len(t, pdf.receipt.Lines, 1)
	assert.Equal(t, "West Coast Hub", pdf.receipt.Lines[0].SourceName)
	assert.Equal(t, "LED-003", pdf.receipt.Lines[0].SKU)

	_, err = uc.TransferPDF(context.Background(), "user_3", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportUseCase_InventoryXLSX(t *testing.T) {
	uc, _, _, xlsx := newReportUseCase(t)

	out, err := uc.InventoryXLSX(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, "PK", string(out))
	assert.Len(t, xlsx.wb.Products, 3)
	assert.Len(t, xlsx.wb.Inventory, 4)
}
