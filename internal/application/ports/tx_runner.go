package ports

import (
	"context"

	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a ella.
// Run confirma solo si fn devuelve nil; View entrega una foto de solo lectura.
type TxRunner interface {
	Run(ctx context.Context, fn func(uow repository.UnitOfWork) error) error
	View(ctx context.Context, fn func(uow repository.UnitOfWork) error) error
}
