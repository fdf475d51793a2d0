package dto

import (
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSnapshotResponse defines the structure for API responses describing the rate store.
type RateSnapshotResponse struct {
	Status        domain.RateStatus          `json:"status"`
	Base          string                     `json:"base"`
	Rates         map[string]decimal.Decimal `json:"rates"`
	CurrencyCount int                        `json:"currencyCount"`
	FetchedAt     *time.Time                 `json:"fetchedAt,omitempty"`
	LastAttemptAt *time.Time                 `json:"lastAttemptAt,omitempty"`
	Error         string                     `json:"error,omitempty"`
}

// ToRateSnapshotResponse converts a domain.RateSnapshot to RateSnapshotResponse DTO
func ToRateSnapshotResponse(snapshot domain.RateSnapshot) RateSnapshotResponse {
	resp := RateSnapshotResponse{
		Status:        snapshot.Status,
		Base:          domain.BaseCurrencyCode,
		Rates:         map[string]decimal.Decimal{},
		CurrencyCount: len(snapshot.Table.Rates),
		Error:         snapshot.Error,
	}
	if snapshot.HasTable() {
		resp.Base = snapshot.Table.Base
		resp.Rates = snapshot.Table.Rates
		fetchedAt := snapshot.Table.FetchedAt
		resp.FetchedAt = &fetchedAt
	}
	if !snapshot.LastAttemptAt.IsZero() {
		lastAttemptAt := snapshot.LastAttemptAt
		resp.LastAttemptAt = &lastAttemptAt
	}
	return resp
}
