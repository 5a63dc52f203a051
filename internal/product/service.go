package product

import (
	"context"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter ListFilter, page, limit int) ([]Product, int, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id uint, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListFilter, page, limit int) ([]Product, int, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, 0, apperr.Newf(apperr.KindInvalidInput, "unknown category: %s", *filter.Category)
	}
	return s.repo.List(ctx, filter, page, limit)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p *Product) error {
	if !p.Category.Valid() {
		return apperr.Newf(apperr.KindInvalidInput, "unknown category: %s", p.Category)
	}
	if p.Price.LessThan(decimal.Zero) {
		return apperr.InvalidInput("price must not be negative")
	}
	if p.Stock < 0 {
		return apperr.InvalidInput("stock must not be negative")
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Uint("product_id", p.ID),
		zap.String("name", p.Name),
	)
	return nil
}

func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Product, error) {
	if params.Category != nil && !params.Category.Valid() {
		return nil, apperr.Newf(apperr.KindInvalidInput, "unknown category: %s", *params.Category)
	}
	if params.Price != nil && params.Price.LessThan(decimal.Zero) {
		return nil, apperr.InvalidInput("price must not be negative")
	}
	if params.Stock != nil && *params.Stock < 0 {
		return nil, apperr.InvalidInput("stock must not be negative")
	}
	return s.repo.Update(ctx, id, params)
}

// Delete deactivates the product; the row is kept so historical orders can
// still reference it.
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Deactivate(ctx, id)
}
