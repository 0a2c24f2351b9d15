package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// AIUseCase orquesta la redacción de descripciones de producto asistida por IA.
// Aplica un timeout de 10 segundos en cada llamada al LLM.
type AIUseCase struct {
	llm      ports.LLMService
	txRunner ports.TxRunner
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, txRunner ports.TxRunner) *AIUseCase {
	return &AIUseCase{llm: llm, txRunner: txRunner}
}

// GenerateProductDescription exige permiso de alta o edición de productos y delega al LLM.
func (uc *AIUseCase) GenerateProductDescription(ctx context.Context, actorID string, req dto.GenerateDescriptionRequest) (*dto.GenerateDescriptionResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleProducts, entity.ActionCreate); err == nil {
			return nil
		}
		return access.RequireIn(uow, actorID, entity.ModuleProducts, entity.ActionUpdate)
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := uc.llm.GenerateProductDescription(ctx, req.Name, req.Keywords)
	if err != nil {
		return nil, fmt.Errorf("descripción IA: %w", err)
	}
	return &dto.GenerateDescriptionResponse{Description: strings.TrimSpace(text)}, nil
}
