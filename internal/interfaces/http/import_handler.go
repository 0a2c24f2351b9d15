package http

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/infrastructure/xlsx"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ImportHandler recibe archivos de importación (CSV o XLSX) como multipart "file" o body crudo.
type ImportHandler struct {
	uc       *inventory.ImportUseCase
	maxBytes int
}

// NewImportHandler construye el handler. maxBytes limita el tamaño del archivo.
func NewImportHandler(uc *inventory.ImportUseCase, maxBytes int) *ImportHandler {
	return &ImportHandler{uc: uc, maxBytes: maxBytes}
}

type upload struct {
	data []byte
	xlsx bool
}

// Import godoc
// @Summary      Importar catálogo y stock
// @Description  Cabecera codigo,nombre_del_producto,cantidad,deposito,precio. Se aplica todo el archivo o nada.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .csv o .xlsx"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.FormatErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	up, ok, err := h.readUpload(c)
	if !ok {
		return err
	}
	var out *dto.ImportResult
	if up.xlsx {
		records, rerr := xlsx.ReadImportSheet(up.data)
		if rerr != nil {
			return writeError(c, rerr)
		}
		out, err = h.uc.ImportRecords(c.UserContext(), GetUserID(c), records)
	} else {
		out, err = h.uc.ImportCSV(c.UserContext(), GetUserID(c), inventory.DecodeImportFile(up.data))
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Simular importación CSV
// @Description  Valida y calcula el resumen sin modificar datos.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .csv"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.FormatErrorResponse
// @Router       /api/import/preview [post]
func (h *ImportHandler) Preview(c *fiber.Ctx) error {
	up, ok, err := h.readUpload(c)
	if !ok {
		return err
	}
	if up.xlsx {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la simulación solo acepta CSV"})
	}
	out, err := h.uc.PreviewCSV(c.UserContext(), GetUserID(c), inventory.DecodeImportFile(up.data))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ImportHandler) readUpload(c *fiber.Ctx) (upload, bool, error) {
	tooLarge := func() (upload, bool, error) {
		return upload{}, false, c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo permitido",
		})
	}

	if fh, err := c.FormFile("file"); err == nil {
		if fh.Size > int64(h.maxBytes) {
			return tooLarge()
		}
		f, err := fh.Open()
		if err != nil {
			return upload{}, false, writeError(c, err)
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, int64(h.maxBytes)+1))
		if err != nil {
			return upload{}, false, writeError(c, err)
		}
		if len(data) > h.maxBytes {
			return tooLarge()
		}
		isXLSX := strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") || fh.Header.Get("Content-Type") == xlsxMIME
		return upload{data: data, xlsx: isXLSX}, true, nil
	}

	body := c.Body()
	if len(body) > h.maxBytes {
		return tooLarge()
	}
	data := append([]byte(nil), body...)
	return upload{data: data, xlsx: strings.HasPrefix(c.Get(fiber.HeaderContentType), xlsxMIME)}, true, nil
}
