package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/dto"
	"github.com/jhoicas/Deposito-api/internal/application/ports"
	"github.com/jhoicas/Deposito-api/internal/domain"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
	"github.com/jhoicas/Deposito-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía ledger.
type ProductUseCase struct {
	txRunner ports.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner ports.TxRunner) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner}
}

// Create crea un nuevo producto. El SKU no puede repetirse (sin distinguir mayúsculas).
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku, name := strings.TrimSpace(in.SKU), strings.TrimSpace(in.Name)
	if sku == "" || name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         sku,
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleProducts, entity.ActionCreate); err != nil {
			return err
		}
		existing, err := uow.Products().GetBySKU(sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return uow.Products().Save(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, 0), nil
}

// GetByID obtiene un producto por ID con su stock total.
func (uc *ProductUseCase) GetByID(ctx context.Context, actorID, id string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleProducts, entity.ActionRead); err != nil {
			return err
		}
		p, err := uow.Products().GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		out = toProductResponse(p, uow.Stock().Total(p.ID))
		return nil
	})
	return out, err
}

// Update actualiza los campos enviados. Cambiar el SKU a uno existente devuelve ErrDuplicate.
func (uc *ProductUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleProducts, entity.ActionUpdate); err != nil {
			return err
		}
		product, err := uow.Products().GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.SKU != nil {
			sku := strings.TrimSpace(*in.SKU)
			if sku == "" {
				return domain.ErrInvalidInput
			}
			other, err := uow.Products().GetBySKU(sku)
			if err != nil {
				return err
			}
			if other != nil && other.ID != product.ID {
				return domain.ErrDuplicate
			}
			product.SKU = sku
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			product.Name = name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				return domain.ErrInvalidInput
			}
			product.Price = *in.Price
		}
		product.UpdatedAt = time.Now()
		if err := uow.Products().Save(product); err != nil {
			return err
		}
		out = toProductResponse(product, uow.Stock().Total(product.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista el catálogo en orden de alta.
func (uc *ProductUseCase) List(ctx context.Context, actorID string) (*dto.ProductListResponse, error) {
	out := &dto.ProductListResponse{Items: []dto.ProductResponse{}}
	err := uc.txRunner.View(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleProducts, entity.ActionRead); err != nil {
			return err
		}
		list, err := uow.Products().List()
		if err != nil {
			return err
		}
		totals := uow.Stock().TotalByProduct()
		for _, p := range list {
			out.Items = append(out.Items, *toProductResponse(p, totals[p.ID]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el producto y todas sus entradas del ledger. El historial de movimientos no se toca.
func (uc *ProductUseCase) Delete(ctx context.Context, actorID, id string) error {
	var removed int
	err := uc.txRunner.Run(ctx, func(uow repository.UnitOfWork) error {
		if err := access.RequireIn(uow, actorID, entity.ModuleProducts, entity.ActionDelete); err != nil {
			return err
		}
		if err := uow.Products().Delete(id); err != nil {
			return err
		}
		removed = uow.Stock().RemoveProduct(id)
		return nil
	})
	if err == nil {
		log.Info().Str("product_id", id).Str("actor_id", actorID).Int("stock_entries", removed).Msg("producto eliminado")
	}
	return err
}

func toProductResponse(p *entity.Product, totalStock int) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		TotalStock:  totalStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
