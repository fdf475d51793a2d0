package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_companion_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 10 * time.Second

const successResult = "success"

// ErrUpstream is returned for any response the provider could not turn into a rate table.
var ErrUpstream = errors.New("upstream rate provider error")

// latestRatesResponse mirrors the /latest/{base} payload of open.er-api.com.
type latestRatesResponse struct {
	Result             string                     `json:"result"`
	BaseCode           string                     `json:"base_code"`
	Rates              map[string]decimal.Decimal `json:"rates"`
	TimeLastUpdateUnix int64                      `json:"time_last_update_unix"`
	ErrorType          string                     `json:"error-type"`
}

// OpenERAPIProvider fetches rate tables from the open.er-api.com HTTP API.
type OpenERAPIProvider struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// Option configures an OpenERAPIProvider.
type Option func(*OpenERAPIProvider)

// WithHTTPClient replaces the HTTP client used for upstream calls.
func WithHTTPClient(client *http.Client) Option {
	return func(p *OpenERAPIProvider) {
		p.client = client
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(timeout time.Duration) Option {
	return func(p *OpenERAPIProvider) {
		p.client = &http.Client{Timeout: timeout}
	}
}

// WithClock overrides the clock used when the payload carries no update time.
func WithClock(now func() time.Time) Option {
	return func(p *OpenERAPIProvider) {
		p.now = now
	}
}

// NewOpenERAPIProvider creates a provider rooted at baseURL, e.g. https://open.er-api.com/v6.
func NewOpenERAPIProvider(baseURL string, options ...Option) *OpenERAPIProvider {
	p := &OpenERAPIProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
		now:     time.Now,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

var _ portsrepo.ExchangeRateProvider = (*OpenERAPIProvider)(nil)

// FetchLatestRates downloads the latest table for baseCode.
func (p *OpenERAPIProvider) FetchLatestRates(ctx context.Context, baseCode string) (domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("base_code", baseCode))
	url := fmt.Sprintf("%s/latest/%s", p.baseURL, baseCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("building rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		logger.Error("Rates request failed", slog.String("error", err.Error()))
		return domain.RateTable{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Error("Rates request returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return domain.RateTable{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Error("Failed to decode rates response", slog.String("error", err.Error()))
		return domain.RateTable{}, fmt.Errorf("%w: decoding response: %w", ErrUpstream, err)
	}

	if payload.Result != successResult {
		return domain.RateTable{}, fmt.Errorf("%w: result %q (%s)", ErrUpstream, payload.Result, payload.ErrorType)
	}
	if len(payload.Rates) == 0 {
		return domain.RateTable{}, fmt.Errorf("%w: response contained no rates", ErrUpstream)
	}

	base := payload.BaseCode
	if base == "" {
		base = baseCode
	}
	fetchedAt := p.now().UTC()
	if payload.TimeLastUpdateUnix > 0 {
		fetchedAt = time.Unix(payload.TimeLastUpdateUnix, 0).UTC()
	}

	logger.Debug("Fetched rates",
		slog.Int("currency_count", len(payload.Rates)),
		slog.Duration("latency", time.Since(start)))
	return domain.NewRateTable(base, payload.Rates, fetchedAt), nil
}
