package dto

import (
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// StatusResponse describes the running service and the state of its rate table.
type StatusResponse struct {
	Service       string            `json:"service"`
	Version       string            `json:"version"`
	RatesStatus   domain.RateStatus `json:"ratesStatus"`
	RatesAsOf     *time.Time        `json:"ratesAsOf,omitempty"`
	CurrencyCount int               `json:"currencyCount"`
}

// ToStatusResponse builds a StatusResponse from the current rate snapshot.
func ToStatusResponse(service, version string, snapshot domain.RateSnapshot) StatusResponse {
	resp := StatusResponse{
		Service:     service,
		Version:     version,
		RatesStatus: snapshot.Status,
	}
	if snapshot.HasTable() {
		fetchedAt := snapshot.Table.FetchedAt
		resp.RatesAsOf = &fetchedAt
		resp.CurrencyCount = len(snapshot.Table.Rates)
	}
	return resp
}
