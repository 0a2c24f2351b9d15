package dto

import "time"

// TransferItemRequest una línea del movimiento.
type TransferItemRequest struct {
	ProductID         string `json:"product_id"`
	SourceWarehouseID string `json:"source_warehouse_id"`
	Quantity          int    `json:"quantity"`
}

// CreateTransferRequest body para POST /api/movements. La validación la hace el motor
// de movimientos para distinguir destino inválido de datos inválidos.
type CreateTransferRequest struct {
	DestinationWarehouseID string                `json:"destination_warehouse_id"`
	Items                  []TransferItemRequest `json:"items"`
}

// TransferItemResponse línea de un movimiento registrado.
type TransferItemResponse struct {
	ProductID         string `json:"product_id"`
	SourceWarehouseID string `json:"source_warehouse_id"`
	Quantity          int    `json:"quantity"`
}

// TransferResponse movimiento registrado.
type TransferResponse struct {
	ID                     string                 `json:"id"`
	Date                   time.Time              `json:"date"`
	DestinationWarehouseID string                 `json:"destination_warehouse_id"`
	Items                  []TransferItemResponse `json:"items"`
	Status                 string                 `json:"status"`
	CreatedBy              string                 `json:"created_by,omitempty"`
}

// TransferListResponse historial de movimientos.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Total int                `json:"total"`
}

// SetStockRequest body para PUT /api/inventory/stock (reemplaza la cantidad).
type SetStockRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

// StockResponse entrada del ledger.
type StockResponse struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int    `json:"quantity"`
}

// InventoryResponse ledger completo.
type InventoryResponse struct {
	Items []StockResponse `json:"items"`
}

// ImportResult resumen de una importación CSV confirmada.
type ImportResult struct {
	RowsProcessed     int `json:"rows_processed"`
	ProductsCreated   int `json:"products_created"`
	ProductsUpdated   int `json:"products_updated"`
	WarehousesCreated int `json:"warehouses_created"`
	UnitsAdded        int `json:"units_added"`
}
