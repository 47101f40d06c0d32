package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iranbazaar-api/utils"
)

func TestIsValidPrice(t *testing.T) {
	cases := []struct {
		price string
		valid bool
	}{
		{"0", true},
		{"10", true},
		{"10.5", true},
		{"10.99", true},
		{"1250000.00", true},
		{"-1", false},
		{"-0.01", false},
		{"1.999", false},
		{"0.001", false},
	}

	for _, tc := range cases {
		price, err := decimal.NewFromString(tc.price)
		require.NoError(t, err, tc.price)
		assert.Equal(t, tc.valid, utils.IsValidPrice(price), "price %s", tc.price)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, utils.IsValidEmail("sara@example.com"))
	assert.True(t, utils.IsValidEmail("first.last+tag@sub.example.ir"))
	assert.False(t, utils.IsValidEmail("not-an-email"))
	assert.False(t, utils.IsValidEmail("missing@tld"))
	assert.False(t, utils.IsValidEmail(""))
}

func TestIsImageContentType(t *testing.T) {
	assert.True(t, utils.IsImageContentType("image/png"))
	assert.True(t, utils.IsImageContentType("image/jpeg"))
	assert.False(t, utils.IsImageContentType("text/plain; charset=utf-8"))
	assert.False(t, utils.IsImageContentType("application/pdf"))
}
