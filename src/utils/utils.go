package utils

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundFloat rounds half away from zero to precision decimal places.
func RoundFloat(val float64, precision int) float64 {
	return toDecimal(val).Round(int32(precision)).InexactFloat64()
}

// FormatCurrency renders an amount with two decimals and thousands
// separators: 1234.5 in SGD becomes "S$1,234.50". Other currencies are
// prefixed with their code.
func FormatCurrency(amount float64, currency string) string {
	prefix := currency
	if currency == "" || currency == "SGD" {
		prefix = "S$"
	}
	return prefix + humanize.FormatFloat("#,###.##", RoundFloat(amount, 2))
}

// decimal panics on NaN and infinities.
func toDecimal(val float64) decimal.Decimal {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(val)
}

// SendJSONError writes {"error": message} with the given status code.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// SendJSON writes v as a JSON response.
func SendJSON(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
