package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Price is a product price in TND. The backend is loose about the JSON type
// of this field, some records carry a number and some a quoted string, so
// decoding accepts both and the rest of the program only ever sees a number.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s = strings.TrimSpace(raw)
		if s == "" {
			*p = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", s)
	}
	*p = Price(v)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// Format renders the price for display, two decimals with the currency.
func (p Price) Format() string {
	return fmt.Sprintf("%.2f TND", float64(p))
}

// ParsePrice parses user input into a Price. The value must be positive.
func ParsePrice(s string) (Price, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New("le prix doit être un nombre")
	}
	if v <= 0 {
		return 0, errors.New("le prix doit être positif")
	}
	return Price(v), nil
}
