package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/usecase"
)

// AIHandler maneja la redacción asistida de descripciones de producto.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Sugerir descripción de producto con IA
// @Description  Devuelve un texto de 50 a 70 palabras para el catálogo. Timeout interno de 10 s.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateDescriptionRequest  true  "name (obligatorio) y keywords"
// @Success      200   {object}  dto.GenerateDescriptionResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/product-description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var req dto.GenerateDescriptionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.GenerateProductDescription(c.UserContext(), GetUserID(c), req)
	if err != nil {
		if isDomainError(err) {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "AI_ERROR", Message: "hubo un error al generar la descripción",
		})
	}
	return c.JSON(out)
}
