package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// AdminUseCase operaciones de mantenimiento sobre todos los datos.
type AdminUseCase struct {
	txRunner ports.TxRunner
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(txRunner ports.TxRunner) *AdminUseCase {
	return &AdminUseCase{txRunner: txRunner}
}

// ResetData borra productos, depósitos, stock e historial de movimientos.
// Roles y usuarios se conservan para que la consola siga siendo usable.
func (uc *AdminUseCase) ResetData(ctx context.Context, actorID string) error {
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleReset, entity.ActionDelete); err != nil {
			return err
		}
		products, err := uow.Products().List()
		if err != nil {
			return err
		}
		for _, p := range products {
			if err := uow.Products().Delete(p.ID); err != nil {
				return err
			}
		}
		warehouses, err := uow.Warehouses().List()
		if err != nil {
			return err
		}
		for _, w := range warehouses {
			if err := uow.Warehouses().Delete(w.ID); err != nil {
				return err
			}
		}
		uow.Stock().Reset()
		return uow.Transfers().Clear()
	})
	if err == nil {
		log.Warn().Str("actor_id", actorID).Msg("datos de inventario reiniciados")
	}
	return err
}
