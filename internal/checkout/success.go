// Package checkout parses the identifiers Creem appends to the checkout
// success redirect URL. It sits at the boundary between the payment provider
// and the billing core; signature verification belongs to the webhook
// collaborator and is not performed here.
package checkout

import (
	"net/url"

	"paystate/internal/types"
)

// ParseSuccessParams extracts the checkout-success identifiers from an
// already-parsed query string. Missing keys yield empty fields.
func ParseSuccessParams(query url.Values) types.CheckoutSuccessParams {
	return types.CheckoutSuccessParams{
		CheckoutID: query.Get("checkout_id"),
		OrderID:    query.Get("order_id"),
		CustomerID: query.Get("customer_id"),
		ProductID:  query.Get("product_id"),
		RequestID:  query.Get("request_id"),
		Signature:  query.Get("signature"),
	}
}

// ParseSuccessQuery parses a raw query string (with or without a leading "?")
// and extracts the checkout-success identifiers. A malformed query string
// yields the zero value rather than an error.
func ParseSuccessQuery(rawQuery string) types.CheckoutSuccessParams {
	if len(rawQuery) > 0 && rawQuery[0] == '?' {
		rawQuery = rawQuery[1:]
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return types.CheckoutSuccessParams{}
	}
	return ParseSuccessParams(values)
}

// HasSuccessParams reports whether the params describe a completed checkout:
// both the checkout id and the order id must be present.
func HasSuccessParams(params types.CheckoutSuccessParams) bool {
	return params.CheckoutID != "" && params.OrderID != ""
}
