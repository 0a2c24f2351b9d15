package repository

import "github.com/jhoicas/Deposito-api/internal/domain/entity"

// StockRepository puerto del ledger (producto, depósito) → cantidad.
// Lo implementa *ledger.Ledger; dentro de una transacción opera sobre la copia de trabajo.
type StockRepository interface {
	Quantity(productID, warehouseID string) int
	Set(productID, warehouseID string, quantity int) error
	// Adjust devuelve *domain.StockError si el resultado fuese negativo.
	Adjust(productID, warehouseID string, delta int) (int, error)
	RemoveProduct(productID string) int
	RemoveWarehouse(warehouseID string) int
	Entries() []entity.Stock
	EntriesByWarehouse(warehouseID string) []entity.Stock
	Total(productID string) int
	TotalByProduct() map[string]int
	Reset()
}
