package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrInvalidDestination  = errors.New("depósito de destino inválido")
	ErrFormat              = errors.New("formato de archivo inválido")
	ErrReferentialConflict = errors.New("conflicto referencial")
	ErrQuantityOverflow    = fmt.Errorf("la cantidad supera el máximo admitido: %w", ErrInvalidInput)
	ErrRoleInUse           = fmt.Errorf("no se puede eliminar un rol en uso: %w", ErrReferentialConflict)
	ErrCurrentUser         = fmt.Errorf("no se puede eliminar el usuario actual: %w", ErrReferentialConflict)
)

// StockError detalla qué línea de un movimiento no tiene stock suficiente.
// errors.Is(err, ErrInsufficientStock) es true.
type StockError struct {
	ProductID   string
	WarehouseID string
	Requested   int
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s en el depósito %s: solicitado %d, disponible %d",
		e.ProductID, e.WarehouseID, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// FormatError error de importación CSV con la fila (1 = cabecera) y el campo afectado.
// Row 0 indica un error del archivo completo.
type FormatError struct {
	Row    int
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Row <= 0 {
		return e.Reason
	}
	return fmt.Sprintf("Error en la fila %d: %s", e.Row, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }
