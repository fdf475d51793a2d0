package domain

// Currency represents a currency offered for conversion.
type Currency struct {
	Code    string `json:"code"`    // e.g., "USD"
	Name    string `json:"name"`    // e.g., "US Dollar"
	Symbol  string `json:"symbol"`  // e.g., "$"
	FlagURL string `json:"flagUrl"` // Optional, empty when unknown
}

// HasFlag reports whether a flag image is known for the currency.
func (c Currency) HasFlag() bool {
	return c.FlagURL != ""
}
