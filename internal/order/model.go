package order

import (
	"time"

	"storefront-be/internal/apperr"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPaypal     PaymentMethod = "paypal"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPaypal:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Validate checks that all five address fields are present.
func (a ShippingAddress) Validate() error {
	switch "" {
	case a.Street, a.City, a.State, a.ZipCode, a.Country:
		return apperr.InvalidInput("shipping address must have street, city, state, zipCode and country")
	}
	return nil
}

// Item is one line of an order. PriceAtPurchase is snapshotted when the
// order is created and never changes afterwards, so historical orders keep
// their totals through later price updates.
type Item struct {
	ID              uint            `json:"-"`
	OrderID         uint            `json:"-"`
	ProductID       uint            `json:"product"`
	ProductName     string          `json:"productName"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

type Order struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user"`
	Items           []Item          `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
