// import_check valida un archivo de importación (CSV o XLSX) sin tocar ningún dato
// y muestra un resumen por depósito, o la primera fila con error.
//
// Uso: go run ./cmd/import_check inventario.csv
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/xlsx"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import_check <archivo.csv|archivo.xlsx>")
		os.Exit(2)
	}
	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer archivo: %v\n", err)
		os.Exit(1)
	}

	var rows []inventory.ImportRow
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, rerr := xlsx.ReadImportSheet(data)
		if rerr != nil {
			fail(rerr)
		}
		rows, err = inventory.ParseImportRecords(records)
	} else {
		rows, err = inventory.ParseImportCSV(inventory.DecodeImportFile(data))
	}
	if err != nil {
		fail(err)
	}

	summarize(rows).write(os.Stdout)
}

func fail(err error) {
	var fe *domain.FormatError
	if errors.As(err, &fe) {
		fmt.Fprintf(os.Stderr, "Fila %d: %s\n", fe.Row, fe.Reason)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
