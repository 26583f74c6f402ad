package domain

import "github.com/govalues/decimal"

type ShippingMethod string

const (
	ShippingMethodStandard  ShippingMethod = "standard"
	ShippingMethodExpress   ShippingMethod = "express"
	ShippingMethodOvernight ShippingMethod = "overnight"
)

var shippingCosts = map[ShippingMethod]decimal.Decimal{
	ShippingMethodStandard:  decimal.MustParse("5.99"),
	ShippingMethodExpress:   decimal.MustParse("12.99"),
	ShippingMethodOvernight: decimal.MustParse("24.99"),
}

// ShippingCost returns the flat rate for the method; unknown methods pay the standard rate.
func ShippingCost(method ShippingMethod) decimal.Decimal {
	if cost, ok := shippingCosts[method]; ok {
		return cost
	}
	return shippingCosts[ShippingMethodStandard]
}

// OrderTotal computes unitPrice * quantity + shipping.
func OrderTotal(unitPrice decimal.Decimal, quantity int, shipping decimal.Decimal) (decimal.Decimal, error) {
	qty, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Zero, err
	}
	subtotal, err := unitPrice.Mul(qty)
	if err != nil {
		return decimal.Zero, err
	}
	return subtotal.Add(shipping)
}
