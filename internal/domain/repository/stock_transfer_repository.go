package repository

import "github.com/jhoicas/Deposito-api/internal/domain/entity"

// StockTransferRepository historial de movimientos de stock (DIP).
type StockTransferRepository interface {
	Append(transfer *entity.StockTransfer) error
	GetByID(id string) (*entity.StockTransfer, error)
	// List devuelve el historial del más reciente al más antiguo.
	List() ([]*entity.StockTransfer, error)
	Delete(id string) error
	Clear() error
}
