package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/internal/patrimony/service"
	"golang-family-office/pkg/common"
	"golang-family-office/pkg/logger"
)

// QuoteRefreshStrategy fetches a fresh market price for every asset that
// carries a ticker, stores it in the quote history and drops the stale
// position cache entry.
type QuoteRefreshStrategy struct {
	logger     *logger.Logger
	familyRepo repository.FamilyRepository
	assetRepo  repository.AssetRepository
	priceRepo  repository.PriceRepository
	quoteRepo  repository.QuoteHistoryRepository
	valuation  service.ValuationService
}

// NewQuoteRefreshStrategy creates a new QuoteRefreshStrategy.
func NewQuoteRefreshStrategy(
	log *logger.Logger,
	familyRepo repository.FamilyRepository,
	assetRepo repository.AssetRepository,
	priceRepo repository.PriceRepository,
	quoteRepo repository.QuoteHistoryRepository,
	valuation service.ValuationService,
) TaskExecutionStrategy {
	return &QuoteRefreshStrategy{
		logger:     log,
		familyRepo: familyRepo,
		assetRepo:  assetRepo,
		priceRepo:  priceRepo,
		quoteRepo:  quoteRepo,
		valuation:  valuation,
	}
}

// GetType returns the task type this strategy handles.
func (s *QuoteRefreshStrategy) GetType() string {
	return common.TaskTypeQuoteRefresh
}

// Execute walks every family's assets and refreshes the ones with a ticker.
// A failing symbol is logged and skipped; one bad ticker must not starve the
// rest of the refresh.
func (s *QuoteRefreshStrategy) Execute(ctx context.Context) (string, error) {
	families, err := s.familyRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list families: %w", err)
	}

	var refreshed, skipped, failed int
	for _, family := range families {
		assets, err := s.assetRepo.FindByFamilyID(ctx, family.ID)
		if err != nil {
			s.logger.Error("Failed to list assets for quote refresh",
				logger.IntField("family_id", int(family.ID)),
				logger.ErrorField(err))
			failed++
			continue
		}

		for i := range assets {
			asset := &assets[i]
			ticker := assetTicker(asset)
			if ticker == "" {
				skipped++
				continue
			}

			quote, err := s.priceRepo.GetQuote(ctx, ticker)
			if err != nil {
				s.logger.Error("Failed to fetch quote",
					logger.StringField("symbol", ticker),
					logger.IntField("asset_id", int(asset.ID)),
					logger.ErrorField(err))
				failed++
				continue
			}

			record := &entity.QuoteHistory{
				AssetID:  asset.ID,
				Price:    quote.Price,
				Currency: quote.Currency,
				Source:   quote.Source,
				QuotedAt: quote.QuotedAt,
			}
			if err := s.quoteRepo.Create(ctx, record); err != nil {
				s.logger.Error("Failed to store quote",
					logger.IntField("asset_id", int(asset.ID)),
					logger.ErrorField(err))
				failed++
				continue
			}

			if err := s.valuation.InvalidateAsset(ctx, asset.FamilyID, asset.ID); err != nil {
				s.logger.Warn("Failed to invalidate position cache", logger.ErrorField(err))
			}
			refreshed++
		}
	}

	result, _ := json.Marshal(map[string]int{
		"refreshed": refreshed,
		"skipped":   skipped,
		"failed":    failed,
	})
	return string(result), nil
}

func assetTicker(asset *entity.Asset) string {
	if len(asset.Details) == 0 {
		return ""
	}
	var details engine.AssetDetails
	if err := json.Unmarshal(asset.Details, &details); err != nil {
		return ""
	}
	return details.Ticker
}
