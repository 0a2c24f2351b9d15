package repository

import "github.com/jhoicas/Deposito-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	// GetByName busca sin distinguir mayúsculas.
	GetByName(name string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
	Save(warehouse *entity.Warehouse) error
	Delete(id string) error
}
