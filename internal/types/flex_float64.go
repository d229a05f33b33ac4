package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat64 is a float64 that can be unmarshaled from either a JSON
// number or a JSON string ("1,249.99" style strings included, since
// scraped vendor prices arrive with currency formatting).
type FlexFloat64 float64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexFloat64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat64(n)
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimPrefix(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), "$")
		if s == "" {
			*f = 0
			return nil
		}
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("FlexFloat64: invalid float64 string %q: %w", s, err)
		}
		*f = FlexFloat64(val)
		return nil
	}

	return fmt.Errorf("FlexFloat64: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexFloat64) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Float64 converts FlexFloat64 back to float64.
func (f FlexFloat64) Float64() float64 {
	return float64(f)
}
