package inventory

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeImportFile convierte el archivo subido a texto. Acepta UTF-8 (con o sin BOM)
// y, si no es UTF-8 válido, lo interpreta como Windows-1252 (exportaciones de Excel).
func DecodeImportFile(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return string(data)
	}
	return string(out)
}
