package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/pkg/config"
	"golang-family-office/pkg/logger"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// PriceRepository resolves the latest market quote for a ticker.
type PriceRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.Quote, error)
}

type brapiQuoteResult struct {
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	Currency           string  `json:"currency"`
}

type brapiQuoteResponse struct {
	Results []brapiQuoteResult `json:"results"`
}

type brapiRepository struct {
	cfg            *config.Quotes
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	inmemoryCache  *cache.Cache
}

// NewBrapiRepository creates a PriceRepository backed by the brapi quote API.
// Quotes are cached in memory so repeated valuations within the TTL do not
// hit the upstream rate limit.
func NewBrapiRepository(cfg *config.Quotes, log *logger.Logger) PriceRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &brapiRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: requestLimiter,
		inmemoryCache:  cache.New(cfg.CacheTTL, 10*time.Minute),
	}
}

func (r *brapiRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	if cached, found := r.inmemoryCache.Get(symbol); found {
		quote := cached.(dto.Quote)
		return &quote, nil
	}

	body, err := r.sendRequest(ctx, fmt.Sprintf("%s/quote/%s?token=%s", r.cfg.BaseURL, symbol, r.cfg.Token))
	if err != nil {
		return nil, err
	}

	var response brapiQuoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("no quote results for symbol %s", symbol)
	}

	result := response.Results[0]
	quote := dto.Quote{
		Symbol:   result.Symbol,
		Price:    result.RegularMarketPrice,
		Currency: result.Currency,
		Source:   "brapi",
		QuotedAt: time.Now(),
	}
	r.inmemoryCache.Set(symbol, quote, cache.DefaultExpiration)

	r.log.DebugContext(ctx, "Fetched quote",
		logger.StringField("symbol", quote.Symbol),
		logger.Float64Field("price", quote.Price))

	return &quote, nil
}

func (r *brapiRepository) sendRequest(ctx context.Context, url string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", url),
		zap.Int("max_request_per_minute", r.cfg.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to quote API", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.ErrorContext(ctx, "Received non-OK response from quote API", fields...)
		return nil, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from quote API", fields...)
		return nil, err
	}

	return body, nil
}
