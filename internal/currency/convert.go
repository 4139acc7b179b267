package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Placeholder is displayed instead of an amount that could not be parsed
const Placeholder = "—"

// ErrInvalidAmount is returned when an amount is empty, not a number, or too large to display
var ErrInvalidAmount = errors.New("invalid amount")

// DefaultRates converts one unit of each currency into US dollars.
// They are fixed and never fetched.
var DefaultRates = map[string]float64{
	"EUR": 1.08,
	"GBP": 1.27,
	"USD": 1,
	"CHF": 1.12,
	"SEK": 0.093,
	"NOK": 0.095,
	"INR": 0.012,
	"PLN": 0.26,
	"CAD": 0.74,
}

// Converter turns local salary amounts into USD display strings
type Converter struct {
	rates map[string]float64
}

// NewConverter returns a Converter using DefaultRates merged with overrides.
// Override codes are case-insensitive; non-positive rates are ignored.
func NewConverter(overrides map[string]float64) *Converter {
	rates := make(map[string]float64, len(DefaultRates)+len(overrides))
	for code, rate := range DefaultRates {
		rates[code] = rate
	}
	for code, rate := range overrides {
		if rate > 0 {
			rates[normalizeCode(code)] = rate
		}
	}
	return &Converter{rates: rates}
}

// Rate returns the USD factor for code, or 1 when the code is unknown
func (c *Converter) Rate(code string) float64 {
	if rate, ok := c.rates[normalizeCode(code)]; ok {
		return rate
	}
	return 1
}

// Known reports whether code has an entry in the rate table
func (c *Converter) Known(code string) bool {
	_, ok := c.rates[normalizeCode(code)]
	return ok
}

// ToUSD parses amount and converts it with the rate for code
func (c *Converter) ToUSD(amount, code string) (float64, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}

	usd := value * c.Rate(code)
	if math.Abs(usd) >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, amount)
	}
	return usd, nil
}

// Format converts amount to USD and renders it as "$12,345".
// Amounts that cannot be parsed render as Placeholder.
func (c *Converter) Format(amount, code string) string {
	usd, err := c.ToUSD(amount, code)
	if err != nil {
		return Placeholder
	}
	return FormatUSD(usd)
}

// FormatUSD rounds value to whole dollars and groups thousands
func FormatUSD(value float64) string {
	return fmt.Sprintf("$%s", humanize.Comma(int64(math.Round(value))))
}

// ParseAmount parses a numeric text field. Surrounding whitespace is ignored.
// The whole field must be a number: values with a numeric prefix such as
// "45000 EUR" or "12,000" are rejected with ErrInvalidAmount and therefore
// display as Placeholder rather than as their leading number.
func ParseAmount(amount string) (float64, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return value, nil
}

// ExtractNumericValue reads a formatted dollar string such as "$45,000" back
// into whole dollars. It returns 0 for placeholders and unparsable text.
func ExtractNumericValue(display string) int64 {
	s := strings.TrimSpace(display)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")

	if strings.HasSuffix(strings.ToUpper(s), "K") {
		if val, err := strconv.ParseInt(s[:len(s)-1], 10, 64); err == nil {
			return val * 1000
		}
	}

	if val, err := strconv.ParseInt(s, 10, 64); err == nil {
		return val
	}
	return 0
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
