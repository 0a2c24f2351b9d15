package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. SKU es la clave de negocio
// (única sin distinguir mayúsculas); el stock vive en el ledger por depósito.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
