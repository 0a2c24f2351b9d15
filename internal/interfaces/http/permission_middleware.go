package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
)

// permissionChecker contrato mínimo que necesita el middleware. Lo implementa *access.Guard.
type permissionChecker interface {
	HasPermission(ctx context.Context, userID string, module entity.Module, action entity.Action) (bool, error)
}

// RequirePermission corta la petición antes del handler si el usuario no tiene la acción
// sobre el módulo. Debe usarse DESPUÉS de AuthMiddleware. El caso de uso vuelve a
// verificar dentro de su transacción.
//
// Comportamiento:
//   - 401 si no hay usuario en el contexto o ya no existe.
//   - 403 si el rol no incluye la acción.
//   - 503 ante un fallo al consultar permisos.
func RequirePermission(checker permissionChecker, module entity.Module, action entity.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		allowed, err := checker.HasPermission(c.UserContext(), userID, module, action)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("no se pudo verificar el permiso")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "sin permiso '" + string(action) + "' sobre el módulo '" + string(module) + "'",
			})
		}
		return c.Next()
	}
}
