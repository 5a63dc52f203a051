package order

import (
	"context"

	"storefront-be/internal/apperr"
	"storefront-be/internal/auth"
	"storefront-be/internal/logger"
	"storefront-be/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogStore is the slice of the product repository the workflow needs.
// DecrementStock must be atomic: it either takes the full quantity or fails
// with the insufficient-stock error, never a partial take.
type CatalogStore interface {
	FindByID(ctx context.Context, id uint) (*product.Product, error)
	DecrementStock(ctx context.Context, id uint, quantity int) error
	RestoreStock(ctx context.Context, id uint, quantity int) error
}

// Requester identifies who is calling a workflow operation.
type Requester struct {
	UserID uint
	Role   auth.Role
}

func (r Requester) isOwner(o *Order) bool { return o.UserID == r.UserID }

type CreateItemInput struct {
	ProductID uint
	Quantity  int
}

type CreateInput struct {
	Items           []CreateItemInput
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
}

type Service interface {
	Create(ctx context.Context, userID uint, in CreateInput) (*Order, error)
	GetByID(ctx context.Context, req Requester, orderID uint) (*Order, error)
	ListMine(ctx context.Context, userID uint) ([]Order, error)
	ListAll(ctx context.Context, req Requester, status *Status, page, limit int) ([]Order, int, error)
	UpdateStatus(ctx context.Context, req Requester, orderID uint, status Status) (*Order, error)
	Cancel(ctx context.Context, req Requester, orderID uint) (*Order, error)
}

type service struct {
	repo    Repository
	catalog CatalogStore
}

func NewService(repo Repository, catalog CatalogStore) Service {
	return &service{repo: repo, catalog: catalog}
}

// Create places an order. Items are processed in request order: each one is
// validated against the catalog, its price snapshotted and its stock taken
// via the conditional decrement. If any item fails, stock already taken for
// earlier items is restored before the error is returned, so a failed
// request leaves the catalog as it found it. No order row is written unless
// every item succeeded.
func (s *service) Create(ctx context.Context, userID uint, in CreateInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
		zap.Int("item_count", len(in.Items)),
	)

	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	if !in.PaymentMethod.Valid() {
		return nil, apperr.Newf(apperr.KindInvalidInput, "unsupported payment method: %s", in.PaymentMethod)
	}
	if err := in.ShippingAddress.Validate(); err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]Item, 0, len(in.Items))
	taken := make([]CreateItemInput, 0, len(in.Items))

	fail := func(err error) (*Order, error) {
		s.releaseStock(ctx, taken)
		return nil, err
	}

	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return fail(apperr.InvalidInput("quantity must be greater than zero"))
		}

		p, err := s.catalog.FindByID(ctx, it.ProductID)
		if err != nil {
			return fail(err)
		}
		if !p.IsActive {
			return fail(apperr.Newf(apperr.KindInvalidState, "product %s is not available", p.Name))
		}

		if err := s.catalog.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			if apperr.KindOf(err) == apperr.KindInsufficientStock {
				err = apperr.Newf(apperr.KindInsufficientStock, "insufficient stock for product %s", p.Name)
			}
			return fail(err)
		}
		taken = append(taken, it)

		itemTotal := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(itemTotal)

		items = append(items, Item{
			ProductID:       p.ID,
			ProductName:     p.Name,
			Quantity:        it.Quantity,
			PriceAtPurchase: p.Price,
		})
	}

	o := &Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		Status:          StatusPending,
		PaymentStatus:   PaymentStatusPending,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return fail(err)
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.String()),
	)
	return o, nil
}

// releaseStock undoes prior decrements after a failed creation. Restore
// failures are logged and skipped so the caller still sees the original
// error.
func (s *service) releaseStock(ctx context.Context, taken []CreateItemInput) {
	for _, it := range taken {
		if err := s.catalog.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
			logger.FromCtx(ctx).Error("failed to restore stock",
				zap.Uint("product_id", it.ProductID),
				zap.Int("quantity", it.Quantity),
				zap.Error(err),
			)
		}
	}
}

// GetByID returns the order when the requester owns it or holds an admin
// role.
func (s *service) GetByID(ctx context.Context, req Requester, orderID uint) (*Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !req.isOwner(o) && !req.Role.CanManageOrders() {
		return nil, ErrAccessDenied
	}
	return o, nil
}

func (s *service) ListMine(ctx context.Context, userID uint) ([]Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context, req Requester, status *Status, page, limit int) ([]Order, int, error) {
	if !req.Role.CanManageOrders() {
		return nil, 0, ErrAccessDenied
	}
	if status != nil && !status.Valid() {
		return nil, 0, apperr.Newf(apperr.KindInvalidInput, "invalid status: %s", *status)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return s.repo.FindAll(ctx, status, page, limit)
}

// UpdateStatus moves the order along the lifecycle. Only transitions allowed
// by the status table go through.
func (s *service) UpdateStatus(ctx context.Context, req Requester, orderID uint, status Status) (*Order, error) {
	if !req.Role.CanManageOrders() {
		return nil, ErrAccessDenied
	}
	if !status.Valid() {
		return nil, apperr.Newf(apperr.KindInvalidInput, "invalid status: %s", status)
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(status) {
		return nil, apperr.Newf(apperr.KindInvalidState,
			"cannot transition order from %s to %s", o.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Uint("order_id", orderID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(status)),
	)

	o.Status = status
	return o, nil
}

// Cancel sets a pending order to cancelled. Only the owning user may cancel;
// admins get no override here.
func (s *service) Cancel(ctx context.Context, req Requester, orderID uint) (*Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !req.isOwner(o) {
		return nil, ErrAccessDenied
	}
	if o.Status != StatusPending {
		return nil, ErrNotPending
	}

	if err := s.repo.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return nil, err
	}

	// TODO: restore product stock when an order is cancelled
	logger.FromCtx(ctx).Info("order cancelled", zap.Uint("order_id", orderID))

	o.Status = StatusCancelled
	return o, nil
}
