package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Deposito-api/internal/application/report"
)

// ReportHandler descarga de exportaciones CSV, PDF y XLSX (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProductsCSV godoc
// @Summary      Exportar productos (CSV)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/products.csv [get]
func (h *ReportHandler) ProductsCSV(c *fiber.Ctx) error {
	out, err := h.uc.ProductsCSV(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "text/csv; charset=utf-8", datedName("productos", "csv"), []byte(out))
}

// InventoryCSV godoc
// @Summary      Exportar inventario completo (CSV)
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/inventory.csv [get]
func (h *ReportHandler) InventoryCSV(c *fiber.Ctx) error {
	out, err := h.uc.InventoryCSV(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "text/csv; charset=utf-8", datedName("inventario_completo", "csv"), []byte(out))
}

// InventoryXLSX godoc
// @Summary      Exportar inventario (XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) InventoryXLSX(c *fiber.Ctx) error {
	out, err := h.uc.InventoryXLSX(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, xlsxMIME, datedName("inventario", "xlsx"), out)
}

// WarehousePDF godoc
// @Summary      Reporte de inventario de un depósito (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del depósito"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/report.pdf [get]
func (h *ReportHandler) WarehousePDF(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.WarehousePDF(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "application/pdf", fmt.Sprintf("reporte_inventario_%s.pdf", id), out)
}

// TransferPDF godoc
// @Summary      Comprobante de movimiento (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/receipt.pdf [get]
func (h *ReportHandler) TransferPDF(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.TransferPDF(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "application/pdf", fmt.Sprintf("comprobante_%s.pdf", id), out)
}

func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

func datedName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
}
