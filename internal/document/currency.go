package document

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Explicit lookup tables instead of inline string comparisons so new
// currencies only need a table entry.
var currencySymbols = map[string]string{
	"USD": "$",
	"SLL": "SLL ",
}

var taxLabels = map[string]string{
	"USD": "GST",
}

const defaultCurrencySymbol = "$"

// enUS groups thousands the way the documents have always shown them.
var enUS = message.NewPrinter(language.AmericanEnglish)

// CurrencySymbol returns the display symbol for a currency code.
func CurrencySymbol(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return defaultCurrencySymbol
}

// TaxLabel returns the tax-line label for a currency code.
func TaxLabel(currency string) string {
	if label, ok := taxLabels[currency]; ok {
		return label
	}
	return "Tax"
}

// FormatMoney formats an amount with the currency symbol, exactly two
// decimal places and locale thousands separators, e.g. "$1,234.50".
func FormatMoney(amount float64, currency string) string {
	return CurrencySymbol(currency) + enUS.Sprintf("%.2f", amount)
}

// formatRate renders a tax rate the way a plain number prints: 8.5 stays
// "8.5", 10 stays "10".
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// formatQuantity renders quantities without trailing zeros.
func formatQuantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatDate renders an ISO date as a short locale date. Unparseable values
// pass through unchanged; garbage in, garbage out.
func formatDate(value string) string {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339, value); err != nil {
			return value
		}
	}
	return parsed.Format("1/2/2006")
}

// currencyOrDefault is the code shown in "Amount Due (USD)" labels.
func currencyOrDefault(currency string) string {
	if currency == "" {
		return "USD"
	}
	return currency
}
