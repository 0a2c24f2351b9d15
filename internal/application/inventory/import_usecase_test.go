package inventory_test

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/memory"
)

func productBySKU(t *testing.T, s *memory.Store, sku string) *entity.Product {
	t.Helper()
	var p *entity.Product
	require.NoError(t, s.View(context.Background(), func(uow repository.UnitOfWork) error {
		var err error
		p, err = uow.Products().GetBySKU(sku)
		return err
	}))
	return p
}

func warehouseByName(t *testing.T, s *memory.Store, name string) *entity.Warehouse {
	t.Helper()
	var w *entity.Warehouse
	require.NoError(t, s.View(context.Background(), func(uow repository.UnitOfWork) error {
		var err error
		w, err = uow.Warehouses().GetByName(name)
		return err
	}))
	return w
}

func TestImportCSV_ActualizaExistentesYCreaNuevos(t *testing.T) {
	store := seededStore(t)
	metrics := &spyMetrics{}
	uc := inventory.NewImportUseCase(store, metrics)

	out, err := uc.ImportCSV(context.Background(), adminID, importHeader+
		"hdw-001,Llave Reforzada,10,main distribution center,'52,00'\n"+
		"NEW-1,Caja de Herramientas,4,Depósito Norte,120\n"+
		"NEW-1,Caja de Herramientas XL,6,Depósito Norte,130\n")
	require.NoError(t, err)

	assert.Equal(t, 3, out.RowsProcessed)
	assert.Equal(t, 1, out.ProductsCreated, "un producto creado y luego repetido cuenta solo como creado")
	assert.Equal(t, 1, out.ProductsUpdated)
	assert.Equal(t, 1, out.WarehousesCreated)
	assert.Equal(t, 20, out.UnitsAdded)
	assert.Equal(t, 1, metrics.imports)

	wrench := productBySKU(t, store, "HDW-001")
	require.NotNil(t, wrench)
	assert.Equal(t, "prod_1", wrench.ID, "el SKU se compara sin distinguir mayúsculas")
	assert.Equal(t, "Llave Reforzada", wrench.Name)
	assert.True(t, decimal.RequireFromString("52").Equal(wrench.Price))
	assert.Equal(t, 160, qty(t, store, "prod_1", "wh_1"), "la cantidad se suma a la existente")

	box := productBySKU(t, store, "NEW-1")
	require.NotNil(t, box)
	assert.Equal(t, "Caja de Herramientas XL", box.Name, "la última fila gana")
	north := warehouseByName(t, store, "Depósito Norte")
	require.NotNil(t, north)
	assert.Equal(t, 10, qty(t, store, box.ID, north.ID))
}

func TestImportCSV_ErrorEnFilaNoAplicaNada(t *testing.T) {
	store := seededStore(t)
	metrics := &spyMetrics{}
	uc := inventory.NewImportUseCase(store, metrics)
	before := snapshot(t, store)

	_, err := uc.ImportCSV(context.Background(), adminID, importHeader+
		"NEW-1,Nuevo,5,Depósito Norte,1\n"+
		"HDW-001,Heavy Duty Wrench,cinco,Main Distribution Center,1\n")
	fe := formatErr(t, err)
	assert.Equal(t, 3, fe.Row)

	assert.Equal(t, before, snapshot(t, store))
	assert.Nil(t, productBySKU(t, store, "NEW-1"))
	assert.Nil(t, warehouseByName(t, store, "Depósito Norte"))
	assert.Equal(t, []string{"format"}, metrics.importRj)
}

func TestImportCSV_RequierePermiso(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewImportUseCase(store, nil)

	_, err := uc.ImportCSV(context.Background(), managerID, importHeader+"A,Uno,1,Centro,1\n")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPreviewCSV_NoConfirmaCambios(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewImportUseCase(store, nil)
	version := store.Version()

	out, err := uc.PreviewCSV(context.Background(), adminID, importHeader+"NEW-1,Nuevo,5,Depósito Norte,1\n")
	require.NoError(t, err)

	assert.Equal(t, 1, out.ProductsCreated)
	assert.Equal(t, 1, out.WarehousesCreated)
	assert.Equal(t, version, store.Version())
	assert.Nil(t, productBySKU(t, store, "NEW-1"))
}

func TestImportRecords_PlanillaXLSX(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewImportUseCase(store, nil)

	out, err := uc.ImportRecords(context.Background(), adminID, [][]string{
		{"codigo", "nombre_del_producto", "cantidad", "deposito", "precio"},
		{"LED-003", "LED Headlamp", "25", "West Coast Hub", "35"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.ProductsUpdated)
	assert.Equal(t, 225, qty(t, store, "prod_3", "wh_2"))
}

func TestImportCSV_CantidadQueDesbordaElStockEsErrorDeFila(t *testing.T) {
	store := seededStore(t)
	metrics := &spyMetrics{}
	uc := inventory.NewImportUseCase(store, metrics)
	before := snapshot(t, store)
	version := store.Version()

	_, err := uc.ImportCSV(context.Background(), adminID, importHeader+
		"NEW-1,Caja,1,Depósito Norte,10\n"+
		"HDW-001,Llave,"+strconv.Itoa(math.MaxInt)+",Main Distribution Center,49.99\n")

	fe := formatErr(t, err)
	assert.Equal(t, 3, fe.Row)
	assert.Equal(t, "cantidad", fe.Field)
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, before, snapshot(t, store))
	assert.Equal(t, version, store.Version())
	assert.Nil(t, productBySKU(t, store, "NEW-1"))
	assert.Equal(t, []string{"format"}, metrics.importRj)
}

func TestImportCSV_TotalDelArchivoQueDesbordaSeRechazaAntesDeConfirmar(t *testing.T) {
	store := seededStore(t)
	uc := inventory.NewImportUseCase(store, nil)
	version := store.Version()
	maxQty := strconv.Itoa(math.MaxInt)

	out, err := uc.ImportCSV(context.Background(), adminID, importHeader+
		"NEW-1,Caja,"+maxQty+",Depósito A,1\n"+
		"NEW-2,Caja,"+maxQty+",Depósito B,1\n")

	assert.Nil(t, out)
	fe := formatErr(t, err)
	assert.Equal(t, 3, fe.Row)
	assert.Equal(t, "cantidad", fe.Field)
	assert.Equal(t, version, store.Version())
	assert.Nil(t, productBySKU(t, store, "NEW-1"))
	assert.Nil(t, warehouseByName(t, store, "Depósito A"))
}
