package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RateTable maps currency codes to their value relative to Base.
// A table is replaced wholesale on refresh and never mutated after construction.
type RateTable struct {
	Base      string
	Rates     map[string]decimal.Decimal
	FetchedAt time.Time
}

// NewRateTable copies rates into a fresh table so callers cannot mutate it afterwards.
func NewRateTable(base string, rates map[string]decimal.Decimal, fetchedAt time.Time) RateTable {
	copied := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return RateTable{Base: base, Rates: copied, FetchedAt: fetchedAt}
}

// IsEmpty reports whether the table holds no rates.
func (t RateTable) IsEmpty() bool {
	return len(t.Rates) == 0
}

// Rate returns the rate for code. The base currency always resolves to one.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	if code == t.Base {
		if r, ok := t.Rates[code]; ok {
			return r, true
		}
		return decimal.NewFromInt(1), true
	}
	r, ok := t.Rates[code]
	return r, ok
}

// Has reports whether code can be converted with this table.
func (t RateTable) Has(code string) bool {
	_, ok := t.Rate(code)
	return ok
}

// Codes returns the currency codes in the table in ascending order.
func (t RateTable) Codes() []string {
	codes := make([]string, 0, len(t.Rates))
	for code := range t.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// RateStatus is the lifecycle state of the rate store.
type RateStatus string

const (
	RateStatusLoading RateStatus = "loading"
	RateStatusLoaded  RateStatus = "loaded"
	RateStatusError   RateStatus = "error"
)

// RateSnapshot is a point-in-time view of the rate store.
// Table keeps the last successfully fetched rates even when Status is RateStatusError.
type RateSnapshot struct {
	Status        RateStatus
	Table         RateTable
	Error         string
	LastAttemptAt time.Time
}

// HasTable reports whether any rates have ever been loaded.
func (s RateSnapshot) HasTable() bool {
	return !s.Table.IsEmpty()
}
