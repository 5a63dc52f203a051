package product

import (
	"net/http"
	"strconv"

	"storefront-be/internal/apperr"
	"storefront-be/internal/transport"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type createProductRequest struct {
	Name        string          `json:"name" binding:"required,min=3,max=200"`
	Description string          `json:"description" binding:"required,min=10,max=1000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=electronics clothing books home sports"`
	Stock       int             `json:"stock" binding:"min=0"`
	ImageURL    *string         `json:"imageUrl" binding:"omitempty,url"`
}

type updateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=3,max=200"`
	Description *string          `json:"description" binding:"omitempty,min=10,max=1000"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,oneof=electronics clothing books home sports"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	ImageURL    *string          `json:"imageUrl" binding:"omitempty,url"`
	IsActive    *bool            `json:"isActive"`
}

// List handles GET /api/products.
func (h *Handler) List(c *gin.Context) {
	page, limit := transport.ParsePagination(c, 10)

	var filter ListFilter
	if v := c.Query("category"); v != "" {
		cat := Category(v)
		filter.Category = &cat
	}
	if v := c.Query("search"); v != "" {
		filter.Search = &v
	}

	products, total, err := h.svc.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		transport.Error(c, err)
		return
	}
	if products == nil {
		products = []Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": transport.NewPagination(page, limit, total),
	})
}

// Get handles GET /api/products/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		transport.Error(c, err)
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		transport.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /api/products (admin only).
func (h *Handler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.Error(c, apperr.InvalidInput(err.Error()))
		return
	}

	p := &Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    Category(req.Category),
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}

	if err := h.svc.Create(c.Request.Context(), p); err != nil {
		transport.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": p,
	})
}

// Update handles PUT /api/products/:id (admin only).
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		transport.Error(c, err)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.Error(c, apperr.InvalidInput(err.Error()))
		return
	}

	params := UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	}
	if req.Category != nil {
		cat := Category(*req.Category)
		params.Category = &cat
	}

	p, err := h.svc.Update(c.Request.Context(), id, params)
	if err != nil {
		transport.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": p,
	})
}

// Delete handles DELETE /api/products/:id (admin only). Soft delete.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		transport.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		transport.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.InvalidInput("invalid product id")
	}
	return uint(id), nil
}
