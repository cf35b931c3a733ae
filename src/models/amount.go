package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Amount is a user-entered numeric value (currency, grams, units, ratios).
// Decoding never fails: missing, null, non-numeric, NaN and infinite values
// all become 0.
type Amount float64

// Float returns the value as float64, mapping NaN and ±Inf to 0 so values
// built in-process get the same treatment as decoded ones.
func (a Amount) Float() float64 {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// UnmarshalJSON accepts JSON numbers and numeric strings ("1,250.50" included).
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount(parseAmount(data))
	return nil
}

// MarshalJSON always emits a valid JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, a.Float(), 'f', -1, 64), nil
}

func parseAmount(data []byte) float64 {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	s := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return 0
		}
		s = strings.ReplaceAll(strings.TrimSpace(unquoted), ",", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
