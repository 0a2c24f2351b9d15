package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/report"
)

func TestWarehouseReportPDF_GeneraDocumento(t *testing.T) {
	g := NewMarotoReportGenerator("test")
	out, err := g.WarehouseReportPDF(context.Background(), report.WarehouseReport{
		WarehouseName: "Depósito Central",
		GeneratedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Lines: []report.WarehouseReportLine{
			{SKU: "LP-001", Name: "Laptop Pro", Quantity: 50},
			{SKU: "MS-002", Name: "Mouse", Quantity: 1200},
		},
		TotalUnits: 1250,
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestTransferReceiptPDF_GeneraDocumento(t *testing.T) {
	g := NewMarotoReportGenerator("")
	out, err := g.TransferReceiptPDF(context.Background(), report.TransferReceipt{
		TransferID:      "tr-1",
		Date:            time.Now(),
		DestinationName: report.UnknownPlace,
		Lines: []report.TransferReceiptLine{
			{SKU: report.NoSKU, Name: report.UnknownProduct, SourceName: report.UnknownWarehouse, Quantity: 3},
		},
		TotalUnits: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "0", formatUnits(0))
	assert.Equal(t, "999", formatUnits(999))
	assert.Equal(t, "25.000", formatUnits(25000))
	assert.Equal(t, "1.000.000", formatUnits(1000000))
	assert.Equal(t, "-1.500", formatUnits(-1500))
}
