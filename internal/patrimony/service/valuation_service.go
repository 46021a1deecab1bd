package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/config"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/redis"
	"golang-family-office/pkg/utils"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ValuationService derives positions from the transaction ledger, caching the
// results in Redis until the ledger or the market price changes.
type ValuationService interface {
	GetPosition(ctx context.Context, asset *entity.Asset) (engine.Position, error)
	GetHoldings(ctx context.Context, family *entity.Family) ([]engine.Holding, error)
	InvalidateAsset(ctx context.Context, familyID, assetID uint) error
}

// NewValuationService creates a new valuation service.
func NewValuationService(
	cfg *config.Valuation,
	log *logger.Logger,
	redisClient *redis.Client,
	quoteRepo repository.QuoteHistoryRepository,
) ValuationService {
	return &valuationService{
		cfg:         cfg,
		log:         log,
		redisClient: redisClient,
		quoteRepo:   quoteRepo,
	}
}

type valuationService struct {
	cfg         *config.Valuation
	log         *logger.Logger
	redisClient *redis.Client
	quoteRepo   repository.QuoteHistoryRepository
}

func positionCacheKey(familyID, assetID uint) string {
	return fmt.Sprintf("patrimony:position:%d:%d", familyID, assetID)
}

// GetPosition replays the asset's ledger into a position snapshot as of now.
// The asset must be loaded with its transactions in replay order.
func (s *valuationService) GetPosition(ctx context.Context, asset *entity.Asset) (engine.Position, error) {
	key := positionCacheKey(asset.FamilyID, asset.ID)
	if cached, err := s.redisClient.Get(ctx, key).Result(); err == nil {
		var position engine.Position
		if err := json.Unmarshal([]byte(cached), &position); err == nil {
			return position, nil
		}
	} else if !errors.Is(err, goredis.Nil) {
		s.log.WarnContext(ctx, "Failed to read position cache", logger.ErrorField(err))
	}

	price := s.resolvePrice(ctx, asset.ID)
	position, err := engine.ComputePosition(toEngineLedger(asset.Transactions), utils.TimeNowBRT(), price)
	if err != nil {
		return engine.Position{}, err
	}

	if payload, err := json.Marshal(position); err == nil {
		if err := s.redisClient.Set(ctx, key, payload, s.cfg.PositionCacheTTL).Err(); err != nil {
			s.log.WarnContext(ctx, "Failed to write position cache", logger.ErrorField(err))
		}
	}

	return position, nil
}

// GetHoldings values every asset of a family.
func (s *valuationService) GetHoldings(ctx context.Context, family *entity.Family) ([]engine.Holding, error) {
	holdings := make([]engine.Holding, 0, len(family.Assets))
	for i := range family.Assets {
		asset := &family.Assets[i]
		position, err := s.GetPosition(ctx, asset)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, engine.Holding{
			Asset:    toEngineAsset(asset),
			Position: position,
		})
	}
	return holdings, nil
}

// InvalidateAsset drops the cached position after a ledger mutation.
func (s *valuationService) InvalidateAsset(ctx context.Context, familyID, assetID uint) error {
	return s.redisClient.Del(ctx, positionCacheKey(familyID, assetID)).Err()
}

// resolvePrice returns the most recent stored quote for the asset, or nil when
// no quote exists. Valuation proceeds at cost basis in that case.
func (s *valuationService) resolvePrice(ctx context.Context, assetID uint) *float64 {
	quote, err := s.quoteRepo.FindLatestByAssetID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WarnContext(ctx, "Failed to load latest quote",
				logger.IntField("asset_id", int(assetID)),
				logger.ErrorField(err))
		}
		return nil
	}
	return utils.ToPointer(quote.Price)
}
