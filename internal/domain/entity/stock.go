package entity

import "math"

// Stock representa una entrada del ledger: cantidad de un producto en un depósito.
// La ausencia de entrada equivale a cantidad 0.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int
}

// AddQuantity suma dos cantidades. Si el resultado no entra en un int devuelve
// math.MaxInt y ok=false; los totales de reportes usan ese valor saturado.
func AddQuantity(a, b int) (sum int, ok bool) {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt, false
	}
	return a + b, true
}
