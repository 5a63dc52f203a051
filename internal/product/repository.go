package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

type ListFilter struct {
	Category *Category
	Search   *string
}

type UpdateParams struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *Category
	Stock       *int
	ImageURL    *string
	IsActive    *bool
}

type Repository interface {
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter ListFilter, page, limit int) ([]Product, int, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id uint, params UpdateParams) (*Product, error)
	Deactivate(ctx context.Context, id uint) error
	DecrementStock(ctx context.Context, id uint, quantity int) error
	RestoreStock(ctx context.Context, id uint, quantity int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, category, stock, image_url, is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.Stock, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns active products, newest first, plus the total match count.
func (r *repository) List(ctx context.Context, filter ListFilter, page, limit int) ([]Product, int, error) {
	where := `WHERE is_active = TRUE`
	args := []any{}
	argIndex := 1

	if filter.Category != nil {
		where += fmt.Sprintf(` AND category = $%d`, argIndex)
		args = append(args, *filter.Category)
		argIndex++
	}
	if filter.Search != nil {
		where += fmt.Sprintf(` AND (name ILIKE $%d OR description ILIKE $%d)`, argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := `SELECT ` + productColumns + ` FROM products ` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, category, stock, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, is_active, created_at, updated_at
	`, p.Name, p.Description, p.Price, p.Category, p.Stock, p.ImageURL).
		Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func (r *repository) Update(ctx context.Context, id uint, params UpdateParams) (*Product, error) {
	set := `updated_at = NOW()`
	args := []any{id}
	argIndex := 2

	add := func(column string, value any) {
		set += fmt.Sprintf(`, %s = $%d`, column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.Category != nil {
		add("category", *params.Category)
	}
	if params.Stock != nil {
		add("stock", *params.Stock)
	}
	if params.ImageURL != nil {
		add("image_url", *params.ImageURL)
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}

	row := r.db.QueryRowContext(ctx,
		`UPDATE products SET `+set+` WHERE id = $1 RETURNING `+productColumns, args...)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Deactivate soft-deletes a product.
func (r *repository) Deactivate(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DecrementStock takes quantity units of stock in a single conditional
// update. Two concurrent callers cannot both pass the stock check: the
// WHERE clause makes check and decrement one atomic statement, and zero
// affected rows means the stock was not there to take.
func (r *repository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2 AND is_active = TRUE
	`, id, quantity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// RestoreStock gives back stock taken by DecrementStock when a later step
// of order creation fails.
func (r *repository) RestoreStock(ctx context.Context, id uint, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = stock + $2, updated_at = NOW()
		WHERE id = $1
	`, id, quantity)
	return err
}
