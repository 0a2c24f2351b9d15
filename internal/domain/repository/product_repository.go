package repository

import "github.com/jhoicas/Deposito-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) si no existe.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca sin distinguir mayúsculas.
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// Save crea o reemplaza por ID.
	Save(product *entity.Product) error
	Delete(id string) error
}
