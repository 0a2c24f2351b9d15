package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/domain"
)

// writeError traduce errores de dominio a status HTTP y cuerpo dto.
func writeError(c *fiber.Ctx, err error) error {
	var (
		formatErr *domain.FormatError
		stockErr  *domain.StockError
	)
	switch {
	case errors.As(err, &formatErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormatErrorResponse{
			Code: "FORMAT_ERROR", Message: formatErr.Error(), Row: formatErr.Row, Field: formatErr.Field,
		})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.StockErrorResponse{
			Code:        "INSUFFICIENT_STOCK",
			Message:     stockErr.Error(),
			ProductID:   stockErr.ProductID,
			WarehouseID: stockErr.WarehouseID,
			Requested:   stockErr.Requested,
			Available:   stockErr.Available,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente para esta operación"})
	case errors.Is(err, domain.ErrInvalidDestination):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DESTINATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrReferentialConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENTIAL_CONFLICT", Message: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "la operación tardó demasiado; intenta de nuevo"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// isDomainError informa si writeError tiene un status específico para err.
func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrUnauthorized, domain.ErrForbidden, domain.ErrInvalidInput,
		domain.ErrNotFound, context.DeadlineExceeded,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
