// Package report arma las salidas de solo lectura: CSV de productos e inventario y los
// modelos que los adaptadores PDF y XLSX dibujan. Nunca valida reglas de negocio; una
// referencia faltante se muestra con un marcador en lugar de fallar.
package report

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Deposito-api/internal/domain/entity"
)

// Unknown marcador de referencia faltante en los CSV.
const Unknown = "Unknown"

var (
	productsHeader  = []string{"sku", "name", "price", "totalStock"}
	inventoryHeader = []string{"warehouseName", "productSKU", "productName", "quantity"}
)

// Snapshot foto inmutable del estado que consumen los formateadores.
type Snapshot struct {
	Products   []*entity.Product
	Warehouses []*entity.Warehouse
	Stock      []entity.Stock
	Transfers  []*entity.StockTransfer
}

func (s Snapshot) productByID() map[string]*entity.Product {
	m := make(map[string]*entity.Product, len(s.Products))
	for _, p := range s.Products {
		m[p.ID] = p
	}
	return m
}

func (s Snapshot) warehouseByID() map[string]*entity.Warehouse {
	m := make(map[string]*entity.Warehouse, len(s.Warehouses))
	for _, w := range s.Warehouses {
		m[w.ID] = w
	}
	return m
}

func (s Snapshot) totalsByProduct() map[string]int {
	m := make(map[string]int, len(s.Products))
	for _, e := range s.Stock {
		m[e.ProductID], _ = entity.AddQuantity(m[e.ProductID], e.Quantity)
	}
	return m
}

// FormatProductsCSV una fila por producto con su stock total en todos los depósitos.
func FormatProductsCSV(s Snapshot) string {
	totals := s.totalsByProduct()
	lines := make([]string, 0, len(s.Products)+1)
	lines = append(lines, strings.Join(productsHeader, ","))
	for _, p := range s.Products {
		lines = append(lines, joinFields(
			p.SKU,
			p.Name,
			p.Price.String(),
			strconv.Itoa(totals[p.ID]),
		))
	}
	return strings.Join(lines, "\n")
}

// FormatInventoryCSV una fila por entrada del ledger, en el orden del ledger.
func FormatInventoryCSV(s Snapshot) string {
	products, warehouses := s.productByID(), s.warehouseByID()
	lines := make([]string, 0, len(s.Stock)+1)
	lines = append(lines, strings.Join(inventoryHeader, ","))
	for _, e := range s.Stock {
		whName, sku, name := Unknown, Unknown, Unknown
		if w, ok := warehouses[e.WarehouseID]; ok && w.Name != "" {
			whName = w.Name
		}
		if p, ok := products[e.ProductID]; ok {
			sku = nonEmpty(p.SKU, Unknown)
			name = nonEmpty(p.Name, Unknown)
		}
		lines = append(lines, joinFields(whName, sku, name, strconv.Itoa(e.Quantity)))
	}
	return strings.Join(lines, "\n")
}

// EscapeField entrecomilla solo si el campo contiene una coma, duplicando las comillas internas.
func EscapeField(field string) string {
	if !strings.Contains(field, ",") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func joinFields(fields ...string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = EscapeField(f)
	}
	return strings.Join(out, ",")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
