// Package xlsx exporta el inventario a planillas y lee planillas de importación con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Deposito-api/internal/application/report"
)

const (
	sheetProducts  = "Productos"
	sheetInventory = "Inventario"
)

// ExcelizeExporter implementa report.WorkbookExporter.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

var _ report.WorkbookExporter = (*ExcelizeExporter)(nil)

// InventoryWorkbook genera un libro con las hojas "Productos" e "Inventario".
func (e *ExcelizeExporter) InventoryWorkbook(_ context.Context, wb report.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetProducts); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetInventory); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	products := make([][]interface{}, 0, len(wb.Products))
	for _, p := range wb.Products {
		price, _ := p.Price.Float64()
		products = append(products, []interface{}{p.SKU, p.Name, price, p.TotalStock})
	}
	if err := writeSheet(f, sheetProducts, []interface{}{"SKU", "Producto", "Precio", "Stock total"}, products, headerStyle); err != nil {
		return nil, err
	}

	inventory := make([][]interface{}, 0, len(wb.Inventory))
	for _, s := range wb.Inventory {
		inventory = append(inventory, []interface{}{s.WarehouseName, s.SKU, s.ProductName, s.Quantity})
	}
	if err := writeSheet(f, sheetInventory, []interface{}{"Depósito", "SKU", "Producto", "Cantidad"}, inventory, headerStyle); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheetProducts, "B", "B", 40)
	_ = f.SetColWidth(sheetInventory, "A", "A", 28)
	_ = f.SetColWidth(sheetInventory, "C", "C", 40)
	_ = f.SetDocProps(&excelize.DocProperties{
		Title:   "Inventario",
		Created: wb.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
	})

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: cabecera %s: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	_ = f.SetCellStyle(sheet, "A1", last, headerStyle)

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("xlsx: fila %s: %w", sheet, err)
		}
	}
	return nil
}
