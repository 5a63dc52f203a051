package order

import (
	"net/http"
	"strconv"

	"storefront-be/internal/apperr"
	"storefront-be/internal/auth"
	"storefront-be/internal/middleware"
	"storefront-be/internal/transport"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type createOrderItemRequest struct {
	Product  uint `json:"product" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	Items           []createOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddress          `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                   `json:"paymentMethod" binding:"required,oneof=credit_card debit_card paypal"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func requester(c *gin.Context) (Requester, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return Requester{}, false
	}
	role, _ := auth.ParseRole(claims.Role)
	return Requester{UserID: claims.UserID, Role: role}, true
}

// Create handles POST /api/orders.
func (h *Handler) Create(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		transport.Error(c, apperr.Unauthorized("user not authenticated"))
		return
	}

	var body createOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		transport.Error(c, apperr.InvalidInput(err.Error()))
		return
	}

	in := CreateInput{
		ShippingAddress: body.ShippingAddress,
		PaymentMethod:   PaymentMethod(body.PaymentMethod),
	}
	for _, it := range body.Items {
		in.Items = append(in.Items, CreateItemInput{ProductID: it.Product, Quantity: it.Quantity})
	}

	o, err := h.svc.Create(c.Request.Context(), req.UserID, in)
	if err != nil {
		transport.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   o,
	})
}

// ListMine handles GET /api/orders/my-orders.
func (h *Handler) ListMine(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		transport.Error(c, apperr.Unauthorized("user not authenticated"))
		return
	}

	orders, err := h.svc.ListMine(c.Request.Context(), req.UserID)
	if err != nil {
		transport.Error(c, err)
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
func (h *Handler) Get(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		transport.Error(c, apperr.Unauthorized("user not authenticated"))
		return
	}

	id, err := parseID(c)
	if err != nil {
		transport.Error(c, err)
		return
	}

	o, err := h.svc.GetByID(c.Request.Context(), req, id)
	if err != nil {
		transport.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// ListAll handles GET /api/orders (admin only).
func (h *Handler) ListAll(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		transport.Error(c, apperr.Unauthorized("user not authenticated"))
		return
	}

	page, limit := transport.ParsePagination(c, 20)

	var status *Status
	if v := c.Query("status"); v != "" {
		s := Status(v)
		status = &s
	}

	orders, total, err := h.svc.ListAll(c.Request.Context(), req, status, page, limit)
	if err != nil {
		transport.Error(c, err)
		return
	}
	if orders == nil {
		orders = []Order{}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": transport.NewPagination(page, limit, total),
	})
}

// UpdateStatus handles PATCH /api/orders/:id/status (admin only).
func (h *Handler) UpdateStatus(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		transport.Error(c, apperr.Unauthorized("user not authenticated"))
		return
	}

	id, err := parseID(c)
	if err != nil {
		transport.Error(c, err)
		return
	}

	var body updateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		transport.Error(c, apperr.InvalidInput(err.Error()))
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), req, id, Status(body.Status))
	if err != nil {
		transport.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   o,
	})
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *Handler) Cancel(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		transport.Error(c, apperr.Unauthorized("user not authenticated"))
		return
	}

	id, err := parseID(c)
	if err != nil {
		transport.Error(c, err)
		return
	}

	o, err := h.svc.Cancel(c.Request.Context(), req, id)
	if err != nil {
		transport.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   o,
	})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.InvalidInput("invalid order id")
	}
	return uint(id), nil
}
