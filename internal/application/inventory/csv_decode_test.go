package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Deposito-api/internal/application/inventory"
)

func TestDecodeImportFile_UTF8ConBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("codigo,depósito")...)
	assert.Equal(t, "codigo,depósito", inventory.DecodeImportFile(data))
}

func TestDecodeImportFile_Windows1252(t *testing.T) {
	// "Depósito Añil" exportado por Excel en Windows-1252.
	data := []byte{'D', 'e', 'p', 0xF3, 's', 'i', 't', 'o', ' ', 'A', 0xF1, 'i', 'l'}
	assert.Equal(t, "Depósito Añil", inventory.DecodeImportFile(data))
}

func TestDecodeImportFile_ASCIISinCambios(t *testing.T) {
	assert.Equal(t, "a,b,c", inventory.DecodeImportFile([]byte("a,b,c")))
}
