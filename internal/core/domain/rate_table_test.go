package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateTable_BaseAlwaysResolves(t *testing.T) {
	table := domain.NewRateTable("USD", map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.9")}, time.Now())

	rate, ok := table.Rate("USD")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
	assert.True(t, table.Has("EUR"))
	assert.False(t, table.Has("GBP"))
}

func TestRateTable_CopiesInput(t *testing.T) {
	rates := map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.9")}
	table := domain.NewRateTable("USD", rates, time.Now())

	rates["GBP"] = decimal.RequireFromString("0.8")

	assert.False(t, table.Has("GBP"))
	assert.Equal(t, []string{"EUR"}, table.Codes())
}

func TestRateTable_CodesSorted(t *testing.T) {
	table := domain.NewRateTable("USD", map[string]decimal.Decimal{
		"JPY": decimal.NewFromInt(150),
		"EUR": decimal.RequireFromString("0.9"),
		"USD": decimal.NewFromInt(1),
	}, time.Now())

	assert.Equal(t, []string{"EUR", "JPY", "USD"}, table.Codes())
	assert.False(t, table.IsEmpty())
	assert.True(t, domain.RateTable{}.IsEmpty())
}

func TestSettingsFlags_ToggleIndependent(t *testing.T) {
	s := domain.DefaultSettings()

	assert.True(t, s.Toggle(domain.SettingDarkMode))
	assert.True(t, s.Notifications)
	assert.True(t, s.AutoRefresh)

	assert.False(t, s.Toggle(domain.SettingNotifications))
	assert.True(t, s.DarkMode)
	assert.True(t, s.AutoRefresh)

	assert.False(t, domain.SettingFlag("volume").IsValid())
	assert.False(t, s.Get(domain.SettingFlag("volume")))
}
