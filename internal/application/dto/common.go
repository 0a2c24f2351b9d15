package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con el detalle por campo (tag que falló).
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// FormatErrorResponse error de importación con la fila y el campo afectados.
type FormatErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field,omitempty"`
}

// StockErrorResponse detalle de stock insuficiente en un movimiento.
type StockErrorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}
