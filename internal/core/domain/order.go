package domain

import (
	"strings"
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodPaypal         PaymentMethod = "paypal"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

var paymentMethods = map[PaymentMethod]struct{}{
	PaymentMethodCreditCard:     {},
	PaymentMethodCard:           {},
	PaymentMethodPaypal:         {},
	PaymentMethodBankTransfer:   {},
	PaymentMethodCashOnDelivery: {},
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethods[m]
	return ok
}

type PaymentStatus string

const PaymentStatusPending PaymentStatus = "pending"

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// MissingField returns the JSON name of the first empty required field, or "".
func (a *ShippingAddress) MissingField() string {
	fields := []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipCode", a.ZipCode},
		{"country", a.Country},
		{"phone", a.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}

// Order is a single buyer-to-seller purchase of one product. UnitPrice, Currency and
// TotalAmount are a snapshot taken at creation and never recomputed.
type Order struct {
	ID        string
	BuyerID   string
	SellerID  string
	ProductID string

	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Currency    string

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus

	ShippingAddress   ShippingAddress
	ShippingMethod    ShippingMethod
	ShippingCost      decimal.Decimal
	TrackingNumber    *string
	EstimatedDelivery *time.Time
	Notes             *string

	Status             OrderStatus
	CancelledAt        *time.Time
	CancelledBy        *string
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Resolved references, filled on reads for display only.
	Buyer   *User
	Seller  *User
	Product *Product
}

// IsParty reports whether the user is the buyer or the seller of the order.
func (o *Order) IsParty(userID string) bool {
	return o.BuyerID == userID || o.SellerID == userID
}

// PlaceOrderCommand carries a buyer's purchase request. BuyerID comes from the
// authenticated identity, never from the request body.
type PlaceOrderCommand struct {
	BuyerID         string
	ProductID       string
	Quantity        *int
	PaymentMethod   PaymentMethod
	ShippingAddress *ShippingAddress
	ShippingMethod  ShippingMethod
	Notes           string
}

// Validate checks the request-only preconditions in order; the first failure wins.
func (c *PlaceOrderCommand) Validate() error {
	if c.PaymentMethod == "" {
		return NewValidationError("paymentMethod", "Payment method is required")
	}
	if !c.PaymentMethod.Valid() {
		return NewValidationError("paymentMethod", "Invalid payment method")
	}
	if c.ShippingAddress == nil {
		return NewValidationError("shippingAddress", "Shipping address is required")
	}
	if field := c.ShippingAddress.MissingField(); field != "" {
		return NewValidationError("shippingAddress."+field, "Shipping address "+field+" is required")
	}
	if c.OrderQuantity() < 1 {
		return NewValidationError("quantity", "Quantity must be at least 1")
	}
	return nil
}

// OrderQuantity returns the requested quantity, defaulting to 1 when omitted.
func (c *PlaceOrderCommand) OrderQuantity() int {
	if c.Quantity == nil {
		return 1
	}
	return *c.Quantity
}

// OrderShippingMethod returns the requested method, defaulting to standard when omitted or unknown.
func (c *PlaceOrderCommand) OrderShippingMethod() ShippingMethod {
	if _, ok := shippingCosts[c.ShippingMethod]; !ok {
		return ShippingMethodStandard
	}
	return c.ShippingMethod
}

type UpdateOrderStatusCommand struct {
	OrderID           string
	SellerID          string
	Status            OrderStatus
	TrackingNumber    string
	EstimatedDelivery *time.Time
}

type CancelOrderCommand struct {
	OrderID string
	BuyerID string
	Reason  string
}

// OrderFilter selects the orders of one party, optionally narrowed to a status.
type OrderFilter struct {
	BuyerID  string
	SellerID string
	Status   OrderStatus
}
