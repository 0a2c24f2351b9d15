package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Deposito-api/internal/domain"
)

// importWidth columnas de la planilla de importación (mismo orden que el CSV).
const importWidth = 5

// ReadImportSheet lee la primera hoja de una planilla y devuelve sus filas como registros.
// excelize recorta las celdas vacías al final de cada fila; se completan hasta el ancho esperado.
func ReadImportSheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.FormatError{Reason: "No se pudo leer la planilla (archivo dañado o no es .xlsx)."}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.FormatError{Reason: "La planilla no tiene hojas."}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer filas: %w", err)
	}
	for i, r := range rows {
		if len(r) > 0 && len(r) < importWidth {
			padded := make([]string, importWidth)
			copy(padded, r)
			rows[i] = padded
		}
	}
	return rows, nil
}
