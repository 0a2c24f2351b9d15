package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Deposito-api/internal/domain/entity"
)

// Marcadores de los documentos PDF.
const (
	NoSKU            = "N/A"
	UnknownProduct   = "Producto Desconocido"
	UnknownWarehouse = "Depósito Desconocido"
	UnknownPlace     = "Desconocido"
)

// WarehouseReportLine una fila del reporte de inventario por depósito.
type WarehouseReportLine struct {
	SKU      string
	Name     string
	Quantity int
}

// WarehouseReport contenido del "Reporte de Inventario" de un depósito.
type WarehouseReport struct {
	WarehouseName string
	GeneratedAt   time.Time
	Lines         []WarehouseReportLine
	TotalUnits    int
}

// TransferReceiptLine una línea del comprobante.
type TransferReceiptLine struct {
	SKU        string
	Name       string
	SourceName string
	Quantity   int
}

// TransferReceipt contenido del "Comprobante de Movimiento de Stock".
type TransferReceipt struct {
	TransferID      string
	Date            time.Time
	DestinationName string
	CreatedBy       string
	Lines           []TransferReceiptLine
	TotalUnits      int
}

// WorkbookProduct fila de la hoja de productos.
type WorkbookProduct struct {
	SKU        string
	Name       string
	Price      decimal.Decimal
	TotalStock int
}

// WorkbookStock fila de la hoja de inventario.
type WorkbookStock struct {
	WarehouseName string
	SKU           string
	ProductName   string
	Quantity      int
}

// Workbook contenido del libro XLSX.
type Workbook struct {
	GeneratedAt time.Time
	Products    []WorkbookProduct
	Inventory   []WorkbookStock
}

// BuildWarehouseReport filtra el ledger por depósito y ordena por SKU.
func BuildWarehouseReport(s Snapshot, warehouseID string, now time.Time) WarehouseReport {
	products := s.productByID()
	rep := WarehouseReport{WarehouseName: UnknownWarehouse, GeneratedAt: now}
	if w, ok := s.warehouseByID()[warehouseID]; ok {
		rep.WarehouseName = w.Name
	}
	for _, e := range s.Stock {
		if e.WarehouseID != warehouseID {
			continue
		}
		line := WarehouseReportLine{SKU: NoSKU, Name: UnknownProduct, Quantity: e.Quantity}
		if p, ok := products[e.ProductID]; ok {
			line.SKU = nonEmpty(p.SKU, NoSKU)
			line.Name = nonEmpty(p.Name, UnknownProduct)
		}
		rep.Lines = append(rep.Lines, line)
		rep.TotalUnits, _ = entity.AddQuantity(rep.TotalUnits, e.Quantity)
	}
	sort.SliceStable(rep.Lines, func(i, j int) bool { return rep.Lines[i].SKU < rep.Lines[j].SKU })
	return rep
}

// BuildTransferReceipt resuelve nombres de productos y depósitos del movimiento.
func BuildTransferReceipt(s Snapshot, transferID string) (TransferReceipt, bool) {
	products, warehouses := s.productByID(), s.warehouseByID()
	for _, t := range s.Transfers {
		if t.ID != transferID {
			continue
		}
		rec := TransferReceipt{
			TransferID:      t.ID,
			Date:            t.Date,
			DestinationName: UnknownPlace,
			CreatedBy:       t.CreatedBy,
		}
		if w, ok := warehouses[t.DestinationWarehouseID]; ok {
			rec.DestinationName = w.Name
		}
		for _, it := range t.Items {
			line := TransferReceiptLine{SKU: NoSKU, Name: UnknownProduct, SourceName: UnknownWarehouse, Quantity: it.Quantity}
			if p, ok := products[it.ProductID]; ok {
				line.SKU = nonEmpty(p.SKU, NoSKU)
				line.Name = nonEmpty(p.Name, UnknownProduct)
			}
			if w, ok := warehouses[it.SourceWarehouseID]; ok {
				line.SourceName = w.Name
			}
			rec.Lines = append(rec.Lines, line)
			rec.TotalUnits, _ = entity.AddQuantity(rec.TotalUnits, it.Quantity)
		}
		return rec, true
	}
	return TransferReceipt{}, false
}

// BuildWorkbook arma las dos hojas del libro XLSX.
func BuildWorkbook(s Snapshot, now time.Time) Workbook {
	totals := s.totalsByProduct()
	products, warehouses := s.productByID(), s.warehouseByID()
	wb := Workbook{GeneratedAt: now}
	for _, p := range s.Products {
		wb.Products = append(wb.Products, WorkbookProduct{SKU: p.SKU, Name: p.Name, Price: p.Price, TotalStock: totals[p.ID]})
	}
	for _, e := range s.Stock {
		row := WorkbookStock{WarehouseName: Unknown, SKU: Unknown, ProductName: Unknown, Quantity: e.Quantity}
		if w, ok := warehouses[e.WarehouseID]; ok {
			row.WarehouseName = w.Name
		}
		if p, ok := products[e.ProductID]; ok {
			row.SKU, row.ProductName = p.SKU, p.Name
		}
		wb.Inventory = append(wb.Inventory, row)
	}
	return wb
}
