package checkout

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"paystate/internal/types"
)

func TestParseSuccessParams(t *testing.T) {
	query := url.Values{
		"checkout_id": {"ch_123"},
		"order_id":    {"ord_456"},
		"customer_id": {"cus_789"},
		"product_id":  {"prod_abc"},
		"request_id":  {"req_def"},
		"signature":   {"sig_xyz"},
	}

	got := ParseSuccessParams(query)
	assert.Equal(t, types.CheckoutSuccessParams{
		CheckoutID: "ch_123",
		OrderID:    "ord_456",
		CustomerID: "cus_789",
		ProductID:  "prod_abc",
		RequestID:  "req_def",
		Signature:  "sig_xyz",
	}, got)
}

func TestParseSuccessQuery(t *testing.T) {
	got := ParseSuccessQuery("?checkout_id=ch_1&order_id=ord_2&extraneous=ignored")
	assert.Equal(t, "ch_1", got.CheckoutID)
	assert.Equal(t, "ord_2", got.OrderID)
	assert.Empty(t, got.Signature)

	// Leading "?" is optional.
	assert.Equal(t, got, ParseSuccessQuery("checkout_id=ch_1&order_id=ord_2&extraneous=ignored"))
}

func TestParseSuccessQuery_Malformed(t *testing.T) {
	got := ParseSuccessQuery("checkout_id=%zz&order_id=ord_2")
	assert.Equal(t, types.CheckoutSuccessParams{}, got)
}

func TestHasSuccessParams(t *testing.T) {
	assert.True(t, HasSuccessParams(types.CheckoutSuccessParams{CheckoutID: "ch", OrderID: "ord"}))
	assert.False(t, HasSuccessParams(types.CheckoutSuccessParams{CheckoutID: "ch"}))
	assert.False(t, HasSuccessParams(types.CheckoutSuccessParams{OrderID: "ord"}))
	assert.False(t, HasSuccessParams(types.CheckoutSuccessParams{}))
}
