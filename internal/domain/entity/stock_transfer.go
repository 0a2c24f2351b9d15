package entity

import "time"

// Estados de un movimiento de stock. Solo existe el estado terminal.
const (
	TransferStatusCompleted = "Completed"
)

// TransferItem una línea del movimiento: cantidad de un producto que sale de un depósito origen.
type TransferItem struct {
	ProductID         string
	SourceWarehouseID string
	Quantity          int
}

// StockTransfer movimiento registrado de una o más líneas hacia un único depósito destino.
// Es inmutable; eliminarlo del historial no revierte el stock.
type StockTransfer struct {
	ID                     string
	Date                   time.Time
	DestinationWarehouseID string
	Items                  []TransferItem
	Status                 string
	CreatedBy              string // UserID
}

// TotalUnits suma las cantidades de todas las líneas (saturada en math.MaxInt).
func (t *StockTransfer) TotalUnits() int {
	total := 0
	for _, it := range t.Items {
		total, _ = AddQuantity(total, it.Quantity)
	}
	return total
}
