package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/domain"
)

const importHeader = "codigo,nombre_del_producto,cantidad,deposito,precio\n"

func formatErr(t *testing.T, err error) *domain.FormatError {
	t.Helper()
	var fe *domain.FormatError
	require.True(t, errors.As(err, &fe), "se esperaba *domain.FormatError, se obtuvo %v", err)
	assert.True(t, errors.Is(err, domain.ErrFormat))
	return fe
}

func TestParseImportCSV_FilasValidas(t *testing.T) {
	rows, err := inventory.ParseImportCSV(importHeader +
		"HDW-001,Heavy Duty Wrench,10,Main Distribution Center,49.99\n" +
		"LED-003,LED Headlamp,0,West Coast Hub,35\n")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "HDW-001", rows[0].SKU)
	assert.Equal(t, 10, rows[0].Quantity)
	assert.True(t, decimal.RequireFromString("49.99").Equal(rows[0].Price))
	assert.Equal(t, 0, rows[1].Quantity, "cantidad cero es válida")
}

func TestParseImportCSV_ComillasSimplesPermitenComas(t *testing.T) {
	rows, err := inventory.ParseImportCSV(importHeader +
		"T-1,'Tornillo 3/8, galvanizado',100,'Depósito Sur, nave 2','1,25'\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Tornillo 3/8, galvanizado", rows[0].Name)
	assert.Equal(t, "Depósito Sur, nave 2", rows[0].WarehouseName)
	assert.True(t, decimal.RequireFromString("1.25").Equal(rows[0].Price), "la coma decimal se acepta")
}

func TestParseImportCSV_CabeceraSinDistinguirMayusculas(t *testing.T) {
	_, err := inventory.ParseImportCSV("CODIGO, Nombre_Del_Producto ,Cantidad,Deposito,PRECIO\nA,B,1,C,1\n")
	assert.NoError(t, err)
}

func TestParseImportCSV_CabeceraIncorrecta(t *testing.T) {
	_, err := inventory.ParseImportCSV("sku,nombre,cantidad,deposito,precio\nA,B,1,C,1\n")
	fe := formatErr(t, err)
	assert.Equal(t, 1, fe.Row)
	assert.Contains(t, fe.Reason, "codigo,nombre_del_producto,cantidad,deposito,precio")
}

func TestParseImportCSV_ArchivoVacio(t *testing.T) {
	for _, text := range []string{"", "  \n ", importHeader, importHeader + "\n\n"} {
		_, err := inventory.ParseImportCSV(text)
		fe := formatErr(t, err)
		assert.Zero(t, fe.Row)
		assert.Equal(t, "El archivo CSV está vacío o solo contiene la cabecera.", fe.Error())
	}
}

func TestParseImportCSV_FilasEnBlancoConservanNumeracion(t *testing.T) {
	_, err := inventory.ParseImportCSV(importHeader +
		"A,Uno,1,Centro,1\n" +
		"\n" +
		"B,Dos,x,Centro,1\n")
	fe := formatErr(t, err)
	assert.Equal(t, 4, fe.Row)
	assert.Equal(t, "cantidad", fe.Field)
	assert.Equal(t, "Error en la fila 4: La cantidad 'x' no es un número válido.", fe.Error())
}

func TestParseImportCSV_ErroresPorFila(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		field  string
		reason string
	}{
		{"columnas de menos", "A,Uno,1,Centro", "", "Se esperaban 5 columnas, pero se encontraron 4."},
		{"columnas de más", "A,Uno,1,Centro,1,extra", "", "Se esperaban 5 columnas, pero se encontraron 6."},
		{"codigo vacío", " ,Uno,1,Centro,1", "codigo", "El código, nombre y depósito no pueden estar vacíos."},
		{"depósito vacío", "A,Uno,1,,1", "deposito", "El código, nombre y depósito no pueden estar vacíos."},
		{"cantidad negativa", "A,Uno,-3,Centro,1", "cantidad", "La cantidad '-3' no es un número válido."},
		{"cantidad decimal", "A,Uno,1.5,Centro,1", "cantidad", "La cantidad '1.5' no es un número válido."},
		{"precio negativo", "A,Uno,1,Centro,-2", "precio", "El precio '-2' no es un número válido."},
		{"precio no numérico", "A,Uno,1,Centro,abc", "precio", "El precio 'abc' no es un número válido."},
		{"precio vacío", "A,Uno,1,Centro,", "precio", "El precio '' no es un número válido."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := inventory.ParseImportCSV(importHeader + "OK,Bien,1,Centro,1\n" + tc.line + "\n")
			fe := formatErr(t, err)
			assert.Equal(t, 3, fe.Row)
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, tc.reason, fe.Reason)
		})
	}
}

func TestParseImportCSV_FinDeLineaWindows(t *testing.T) {
	rows, err := inventory.ParseImportCSV("codigo,nombre_del_producto,cantidad,deposito,precio\r\nA,Uno,7,Centro,2\r\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Quantity)
}

func TestParseImportRecords_PlanillaRellenada(t *testing.T) {
	rows, err := inventory.ParseImportRecords([][]string{
		{"codigo", "nombre_del_producto", "cantidad", "deposito", "precio"},
		{"", "", "", "", ""},
		{"A", "Uno", "3", "Centro", "10.5"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Line)
}
