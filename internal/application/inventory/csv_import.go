package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Deposito-api/internal/domain"
)

// importColumns cabecera exacta (sin distinguir mayúsculas) del CSV de importación.
var importColumns = []string{"codigo", "nombre_del_producto", "cantidad", "deposito", "precio"}

// ImportRow fila de datos ya validada. Line es el número de fila en el archivo (la cabecera es la 1).
type ImportRow struct {
	Line          int
	SKU           string
	Name          string
	Quantity      int
	WarehouseName string
	Price         decimal.Decimal
}

// ParseImportCSV valida el archivo completo y devuelve sus filas. Ante el primer error
// devuelve *domain.FormatError y ninguna fila.
func ParseImportCSV(text string) ([]ImportRow, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errEmptyImport()
	}
	lines := strings.Split(text, "\n")
	records := make([][]string, 0, len(lines))
	records = append(records, strings.Split(lines[0], ","))
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			records = append(records, nil)
			continue
		}
		records = append(records, splitImportLine(line))
	}
	return ParseImportRecords(records)
}

// ParseImportRecords valida registros ya separados en campos (CSV o planilla XLSX).
// records[0] es la cabecera; un registro sin contenido se omite pero conserva su número de fila.
func ParseImportRecords(records [][]string) ([]ImportRow, error) {
	if len(records) == 0 {
		return nil, errEmptyImport()
	}
	if !headerMatches(records[0]) {
		return nil, &domain.FormatError{
			Row:    1,
			Field:  "cabecera",
			Reason: "La cabecera del CSV es incorrecta. Se esperaba: " + strings.Join(importColumns, ","),
		}
	}

	rows := make([]ImportRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if blankRecord(rec) {
			continue
		}
		row, err := parseImportRecord(i+2, rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errEmptyImport()
	}
	return rows, nil
}

func errEmptyImport() error {
	return &domain.FormatError{Reason: "El archivo CSV está vacío o solo contiene la cabecera."}
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func headerMatches(header []string) bool {
	if len(header) != len(importColumns) {
		return false
	}
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) != importColumns[i] {
			return false
		}
	}
	return true
}

func parseImportRecord(lineNo int, rec []string) (ImportRow, error) {
	parts := make([]string, len(rec))
	for i, f := range rec {
		parts[i] = strings.TrimSpace(f)
	}
	if len(parts) != len(importColumns) {
		return ImportRow{}, &domain.FormatError{
			Row:    lineNo,
			Reason: fmt.Sprintf("Se esperaban %d columnas, pero se encontraron %d.", len(importColumns), len(parts)),
		}
	}
	sku, name, qtyStr, whName, priceStr := parts[0], parts[1], parts[2], parts[3], parts[4]

	if field := firstEmpty(map[string]string{"codigo": sku, "nombre_del_producto": name, "deposito": whName}); field != "" {
		return ImportRow{}, &domain.FormatError{
			Row:    lineNo,
			Field:  field,
			Reason: "El código, nombre y depósito no pueden estar vacíos.",
		}
	}

	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 0 {
		return ImportRow{}, &domain.FormatError{
			Row:    lineNo,
			Field:  "cantidad",
			Reason: fmt.Sprintf("La cantidad '%s' no es un número válido.", qtyStr),
		}
	}

	price, err := decimal.NewFromString(strings.Replace(priceStr, ",", ".", 1))
	if err != nil || price.IsNegative() {
		return ImportRow{}, &domain.FormatError{
			Row:    lineNo,
			Field:  "precio",
			Reason: fmt.Sprintf("El precio '%s' no es un número válido.", priceStr),
		}
	}

	return ImportRow{
		Line:          lineNo,
		SKU:           sku,
		Name:          name,
		Quantity:      qty,
		WarehouseName: whName,
		Price:         price,
	}, nil
}

// firstEmpty devuelve el primer campo vacío en orden de columna.
func firstEmpty(fields map[string]string) string {
	for _, col := range importColumns {
		if v, ok := fields[col]; ok && v == "" {
			return col
		}
	}
	return ""
}

// splitImportLine separa por comas respetando comillas simples, que se descartan.
// Cada parte se recorta.
func splitImportLine(line string) []string {
	var (
		parts   []string
		current strings.Builder
		quoted  bool
	)
	for _, r := range line {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ',' && !quoted:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	parts = append(parts, strings.TrimSpace(current.String()))
	return parts
}
