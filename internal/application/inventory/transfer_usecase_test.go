package inventory_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

func transfer(actor, dest string, items ...entity.TransferItem) inventory.TransferInput {
	return inventory.TransferInput{ActorID: actor, DestinationWarehouseID: dest, Items: items}
}

func item(productID, sourceID string, quantity int) entity.TransferItem {
	return entity.TransferItem{ProductID: productID, SourceWarehouseID: sourceID, Quantity: quantity}
}

func TestApplyTransfer_MueveYConservaUnidades(t *testing.T) {
	store := seededStore(t)
	metrics := &spyMetrics{}
	uc := inventory.NewTransferUseCase(store, metrics)
	before := totalUnits(snapshot(t, store))

	out, err := uc.ApplyTransfer(context.Background(), transfer(operatorID, "wh_2",
		item("prod_1", "wh_1", 20),
		item("prod_2", "wh_1", 300),
	))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.TransferStatusCompleted, out.Status)
	assert.Equal(t, operatorID, out.CreatedBy)
	assert.Equal(t, 130, qty(t, store, "prod_1", "wh_1"))
	assert.Equal(t, 95, qty(t, store, "prod_1", "wh_2"))
	assert.Equal(t, 0, qty(t, store, "prod_2", "wh_1"))
	assert.Equal(t, 300, qty(t, store, "prod_2", "wh_2"))
	assert.Equal(t, before, totalUnits(snapshot(t, store)), "un movimiento no crea ni destruye unidades")
	assert.Equal(t, 1, metrics.applied)
	assert.Equal(t, 320, metrics.units)
}

func TestApplyTransfer_OrigenesDistintosAlMismoDestino(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	// prod_1 está en wh_1 y wh_2; se consolida todo en un depósito nuevo.
	require.NoError(t, createWarehouse(t, store, "wh_3", "Depósito Norte"))
	_, err := uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_3",
		item("prod_1", "wh_1", 150),
		item("prod_1", "wh_2", 75),
	))
	require.NoError(t, err)
	assert.Equal(t, 225, qty(t, store, "prod_1", "wh_3"))
}

func TestApplyTransfer_StockInsuficienteNoAplicaNinguna(t *testing.T) {
	store := seededStore(t)
	metrics := &spyMetrics{}
	uc := inventory.NewTransferUseCase(store, metrics)
	before := snapshot(t, store)

	_, err := uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_2",
		item("prod_2", "wh_1", 100),
		item("prod_1", "wh_1", 151),
	))

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "prod_1", stockErr.ProductID)
	assert.Equal(t, "wh_1", stockErr.WarehouseID)
	assert.Equal(t, 151, stockErr.Requested)
	assert.Equal(t, 150, stockErr.Available)
	assert.Equal(t, before, snapshot(t, store), "el ledger debe quedar intacto")
	assert.Equal(t, []string{"insufficient_stock"}, metrics.rejected)

	list, err := uc.ListTransfers(context.Background(), adminID)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestApplyTransfer_LineasRepetidasSeAcumulan(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	_, err := uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_2",
		item("prod_1", "wh_1", 100),
		item("prod_1", "wh_1", 100),
	))
	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 50, stockErr.Available, "la segunda línea ve el resultado de la primera")
	assert.Equal(t, 150, qty(t, store, "prod_1", "wh_1"))
}

func TestApplyTransfer_OrigenSinEntradaEsStockInsuficiente(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	_, err := uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_1", item("prod_3", "wh_inexistente", 1)))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApplyTransfer_DestinoInvalido(t *testing.T) {
	store := seededStore(t)
	metrics := &spyMetrics{}
	uc := inventory.NewTransferUseCase(store, metrics)

	cases := map[string]inventory.TransferInput{
		"destino vacío":        transfer(adminID, "", item("prod_1", "wh_1", 1)),
		"sin líneas":           transfer(adminID, "wh_2"),
		"origen igual destino": transfer(adminID, "wh_1", item("prod_2", "wh_1", 1)),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.ApplyTransfer(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidDestination)
		})
	}
	assert.Equal(t, 150, qty(t, store, "prod_1", "wh_1"))
}

func TestApplyTransfer_LineaInvalida(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	for _, it := range []entity.TransferItem{
		item("prod_1", "wh_1", 0),
		item("prod_1", "wh_1", -5),
		item("", "wh_1", 1),
		item("prod_1", "", 1),
	} {
		_, err := uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_2", it))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestApplyTransfer_ReferenciasInexistentes(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	_, err := uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_9", item("prod_1", "wh_1", 1)))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_2", item("prod_9", "wh_1", 1)))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyTransfer_SinPermiso(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	_, err := uc.ApplyTransfer(context.Background(), transfer("user_desconocido", "wh_2", item("prod_1", "wh_1", 1)))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 150, qty(t, store, "prod_1", "wh_1"))
}

func TestApplyTransferFromRequest_MapeaLineas(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	out, err := uc.ApplyTransferFromRequest(context.Background(), managerID, dto.CreateTransferRequest{
		DestinationWarehouseID: "wh_1",
		Items: []dto.TransferItemRequest{
			{ProductID: "prod_3", SourceWarehouseID: "wh_2", Quantity: 50},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 50, qty(t, store, "prod_3", "wh_1"))
}

func TestTransferHistorial_BorrarNoRevierteStock(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewTransferUseCase(store, nil)

	out, err := uc.ApplyTransfer(context.Background(), transfer(adminID, "wh_2", item("prod_2", "wh_1", 10)))
	require.NoError(t, err)

	got, err := uc.GetTransfer(context.Background(), operatorID, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)

	assert.ErrorIs(t, uc.DeleteTransfer(context.Background(), operatorID, out.ID), domain.ErrForbidden,
		"Operator no tiene movementHistory/delete")
	require.NoError(t, uc.DeleteTransfer(context.Background(), adminID, out.ID))

	_, err = uc.GetTransfer(context.Background(), adminID, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 290, qty(t, store, "prod_2", "wh_1"))
	assert.Equal(t, 10, qty(t, store, "prod_2", "wh_2"))
}

func TestApplyTransfer_DestinoLlenoNoEsStockInsuficiente(t *testing.T) {
	store := seededStore(t)
	metrics := &spyMetrics{}
	uc := inventory.NewTransferUseCase(store, metrics)
	require.NoError(t, store.Run(context.Background(), func(uow repository.UnitOfWork) error {
		return uow.Stock().Set("prod_1", "wh_2", math.MaxInt)
	}))
	before := snapshot(t, store)

	_, err := uc.ApplyTransfer(context.Background(), transfer(operatorID, "wh_2", item("prod_1", "wh_1", 1)))

	assert.ErrorIs(t, err, domain.ErrQuantityOverflow)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, before, snapshot(t, store))
	assert.Equal(t, []string{"quantity_overflow"}, metrics.rejected)
}
