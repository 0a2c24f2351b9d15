package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/domain"
)

func TestListInventory_FiltraPorDeposito(t *testing.T) {
	uc := inventory.NewStockUseCase(seededStore(t))

	all, err := uc.ListInventory(context.Background(), operatorID, "")
	require.NoError(t, err)
	assert.Len(t, all.Items, 4)

	west, err := uc.ListInventory(context.Background(), operatorID, "wh_2")
	require.NoError(t, err)
	require.Len(t, west.Items, 2)
	for _, it := range west.Items {
		assert.Equal(t, "wh_2", it.WarehouseID)
	}
}

func TestGetQuantity_ParSinEntradaEsCero(t *testing.T) {
	uc := inventory.NewStockUseCase(seededStore(t))

	out, err := uc.GetQuantity(context.Background(), operatorID, "prod_3", "wh_1")
	require.NoError(t, err)
	assert.Zero(t, out.Quantity)
}

func TestSetQuantity_AjusteYValidaciones(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewStockUseCase(store)

	out, err := uc.SetQuantity(context.Background(), managerID, dto.SetStockRequest{ProductID: "prod_3", WarehouseID: "wh_1", Quantity: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Quantity)
	assert.Equal(t, 12, qty(t, store, "prod_3", "wh_1"))

	_, err = uc.SetQuantity(context.Background(), managerID, dto.SetStockRequest{ProductID: "prod_3", WarehouseID: "wh_1", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetQuantity(context.Background(), managerID, dto.SetStockRequest{ProductID: "prod_9", WarehouseID: "wh_1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SetQuantity(context.Background(), operatorID, dto.SetStockRequest{ProductID: "prod_3", WarehouseID: "wh_1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
