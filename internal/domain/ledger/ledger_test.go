package ledger_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/ledger"
)

func seeded(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.FromEntries([]entity.Stock{
		{ProductID: "p1", WarehouseID: "w1", Quantity: 150},
		{ProductID: "p2", WarehouseID: "w1", Quantity: 300},
		{ProductID: "p1", WarehouseID: "w2", Quantity: 75},
	})
	require.NoError(t, err)
	return l
}

func TestLedger_QuantitySinEntradaEsCero(t *testing.T) {
	l := seeded(t)
	assert.Equal(t, 0, l.Quantity("p2", "w2"))
	assert.Len(t, l.Entries(), 3)
}

func TestLedger_AdjustCreaEntradaYSuma(t *testing.T) {
	l := seeded(t)
	got, err := l.Adjust("p2", "w2", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = l.Adjust("p2", "w2", 5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
	assert.Len(t, l.Entries(), 4)
}

func TestLedger_AdjustNegativoRechazaSinModificar(t *testing.T) {
	l := seeded(t)
	_, err := l.Adjust("p1", "w1", -151)

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 151, stockErr.Requested)
	assert.Equal(t, 150, stockErr.Available)
	assert.Equal(t, 150, l.Quantity("p1", "w1"))
}

func TestLedger_AdjustPuedeDejarEnCero(t *testing.T) {
	l := seeded(t)
	got, err := l.Adjust("p1", "w2", -75)
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.Contains(t, l.Entries(), entity.Stock{ProductID: "p1", WarehouseID: "w2", Quantity: 0}, "la entrada se conserva en cero")
}

func TestLedger_AdjustDesbordadoRechazaSinModificar(t *testing.T) {
	l := seeded(t)
	_, err := l.Adjust("p1", "w1", math.MaxInt)

	assert.ErrorIs(t, err, domain.ErrQuantityOverflow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 150, l.Quantity("p1", "w1"))

	got, err := l.Adjust("p9", "w9", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)
}

func TestLedger_TotalesSaturanEnMaxInt(t *testing.T) {
	l := seeded(t)
	require.NoError(t, l.Set("p1", "w3", math.MaxInt))

	assert.Equal(t, math.MaxInt, l.Total("p1"))
	assert.Equal(t, math.MaxInt, l.TotalByProduct()["p1"])
	assert.Equal(t, 300, l.TotalByProduct()["p2"])
}

func TestLedger_SetRechazaNegativos(t *testing.T) {
	l := seeded(t)
	assert.ErrorIs(t, l.Set("p1", "w1", -1), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.Set("", "w1", 1), domain.ErrInvalidInput)
	require.NoError(t, l.Set("p1", "w1", 7))
	assert.Equal(t, 7, l.Quantity("p1", "w1"))
}

func TestLedger_FromEntriesRechazaNegativos(t *testing.T) {
	_, err := ledger.FromEntries([]entity.Stock{{ProductID: "p1", WarehouseID: "w1", Quantity: -1}})
	assert.Error(t, err)
}

func TestLedger_BorradoEnCascada(t *testing.T) {
	l := seeded(t)
	assert.Equal(t, 2, l.RemoveProduct("p1"))
	assert.Equal(t, []entity.Stock{{ProductID: "p2", WarehouseID: "w1", Quantity: 300}}, l.Entries())

	l = seeded(t)
	assert.Equal(t, 2, l.RemoveWarehouse("w1"))
	assert.Equal(t, 75, l.Total("p1"))
	assert.Zero(t, l.Total("p2"))
}

func TestLedger_TotalesPorProducto(t *testing.T) {
	l := seeded(t)
	assert.Equal(t, 225, l.Total("p1"))
	assert.Equal(t, map[string]int{"p1": 225, "p2": 300}, l.TotalByProduct())
}

func TestLedger_EntriesConservaOrden(t *testing.T) {
	l := seeded(t)
	_, err := l.Adjust("p3", "w1", 1)
	require.NoError(t, err)

	byWh := l.EntriesByWarehouse("w1")
	require.Len(t, byWh, 3)
	assert.Equal(t, "p1", byWh[0].ProductID)
	assert.Equal(t, "p3", byWh[2].ProductID)
}

func TestLedger_CloneEsIndependiente(t *testing.T) {
	l := seeded(t)
	c := l.Clone()
	_, err := c.Adjust("p1", "w1", -100)
	require.NoError(t, err)
	c.RemoveWarehouse("w2")

	assert.Equal(t, 150, l.Quantity("p1", "w1"))
	assert.Len(t, l.Entries(), 3)
	assert.Equal(t, 50, c.Quantity("p1", "w1"))
}

func TestLedger_Reset(t *testing.T) {
	l := seeded(t)
	l.Reset()
	assert.Empty(t, l.Entries())
	assert.Empty(t, l.TotalByProduct())
}
