package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/inventory"
)

// InventoryHandler maneja stock y movimientos entre depósitos (protegido).
type InventoryHandler struct {
	stock     *inventory.StockUseCase
	transfers *inventory.TransferUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.StockUseCase, transfers *inventory.TransferUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, transfers: transfers}
}

// ListStock godoc
// @Summary      Listar stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por depósito"
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	out, err := h.stock.ListInventory(c.UserContext(), GetUserID(c), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Cantidad de un producto en un depósito
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    path  string  true  "ID del producto"
// @Param        warehouse_id  path  string  true  "ID del depósito"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/inventory/{product_id}/{warehouse_id} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	out, err := h.stock.GetQuantity(c.UserContext(), GetUserID(c), c.Params("product_id"), c.Params("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetStock godoc
// @Summary      Ajustar cantidad
// @Description  Reemplaza la cantidad de un producto en un depósito (nunca negativa).
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetStockRequest  true  "Producto, depósito y cantidad"
// @Success      200   {object}  dto.StockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/inventory/stock [put]
func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.stock.SetQuantity(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateTransfer godoc
// @Summary      Registrar movimiento de stock
// @Description  Mueve una o más líneas hacia un depósito destino. Si alguna línea no tiene stock suficiente no se aplica ninguna.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Destino y líneas"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.StockErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transfers.ApplyTransferFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransfers godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransferListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListTransfers(c *fiber.Ctx) error {
	out, err := h.transfers.ListTransfers(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetTransfer godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *InventoryHandler) GetTransfer(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.transfers.GetTransfer(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteTransfer godoc
// @Summary      Quitar movimiento del historial
// @Description  No revierte el stock.
// @Tags         movements
// @Security     Bearer
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *InventoryHandler) DeleteTransfer(c *fiber.Ctx) error {
	id, ok, err := requireParam(c, "id")
	if !ok {
		return err
	}
	if err := h.transfers.DeleteTransfer(c.UserContext(), GetUserID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
