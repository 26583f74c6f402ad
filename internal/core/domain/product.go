package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"
	ProductStatusInactive ProductStatus = "inactive"
)

type ProductCondition string

const (
	ProductConditionNew         ProductCondition = "new"
	ProductConditionLikeNew     ProductCondition = "like-new"
	ProductConditionUsed        ProductCondition = "used"
	ProductConditionRefurbished ProductCondition = "refurbished"
)

const DefaultCurrency = "USD"

type Product struct {
	ID          string
	SellerID    string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	Condition   ProductCondition
	Stock       int
	Status      ProductStatus
	AdminNotes  *string
	ApprovedBy  *string
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Seller *User
}

// ProductReview is an admin moderation decision.
type ProductReview struct {
	ProductID  string
	AdminID    string
	Status     ProductStatus
	AdminNotes string
}

var (
	productCurrencies = map[string]struct{}{"GBP": {}, "USD": {}, "EUR": {}}
	productConditions = map[ProductCondition]struct{}{
		ProductConditionNew:         {},
		ProductConditionLikeNew:     {},
		ProductConditionUsed:        {},
		ProductConditionRefurbished: {},
	}
	minProductPrice = decimal.MustParse("0.01")
)

// Normalize applies listing defaults and validates the seller supplied fields.
func (p *Product) Normalize() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Condition == "" {
		p.Condition = ProductConditionNew
	}

	switch {
	case p.Name == "":
		return NewValidationError("name", "Product name is required")
	case utf8.RuneCountInString(p.Name) > 200:
		return NewValidationError("name", "Product name must be between 1 and 200 characters")
	case p.Price.Cmp(minProductPrice) < 0:
		return NewValidationError("price", "Price must be a positive number")
	case p.Stock < 0:
		return NewValidationError("stock", "Stock cannot be negative")
	case utf8.RuneCountInString(p.Description) > 2000:
		return NewValidationError("description", "Description cannot exceed 2000 characters")
	}
	if _, ok := productCurrencies[p.Currency]; !ok {
		return NewValidationError("currency", "Currency must be GBP, USD, or EUR")
	}
	if _, ok := productConditions[p.Condition]; !ok {
		return NewValidationError("condition", "Condition must be one of: new, like-new, used, refurbished")
	}
	return nil
}
