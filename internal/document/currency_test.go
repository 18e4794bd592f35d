package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "SLL ", CurrencySymbol("SLL"))
	assert.Equal(t, "$", CurrencySymbol("EUR"))
	assert.Equal(t, "$", CurrencySymbol(""))
}

func TestTaxLabel(t *testing.T) {
	assert.Equal(t, "GST", TaxLabel("USD"))
	assert.Equal(t, "Tax", TaxLabel("SLL"))
	assert.Equal(t, "Tax", TaxLabel(""))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$250.00", FormatMoney(250, "USD"))
	assert.Equal(t, "$1,234.50", FormatMoney(1234.5, "USD"))
	assert.Equal(t, "$1,234,567.89", FormatMoney(1234567.891, "USD"))
	assert.Equal(t, "SLL 5,000.00", FormatMoney(5000, "SLL"))
	assert.Equal(t, "$0.00", FormatMoney(0, ""))
	assert.Equal(t, "$-125.50", FormatMoney(-125.5, "USD"))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "10", formatRate(10))
	assert.Equal(t, "8.5", formatRate(8.5))
	assert.Equal(t, "0.25", formatRate(0.25))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1/15/2026", formatDate("2026-01-15"))
	assert.Equal(t, "12/3/2025", formatDate("2025-12-03"))
	assert.Equal(t, "7/4/2026", formatDate("2026-07-04T00:00:00Z"))
	// Garbage passes through unchanged.
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
}

func TestCurrencyOrDefault(t *testing.T) {
	assert.Equal(t, "USD", currencyOrDefault(""))
	assert.Equal(t, "SLL", currencyOrDefault("SLL"))
}
