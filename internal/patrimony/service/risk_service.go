package service

import (
	"context"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/logger"
)

// RiskService scores assets and families against the classification rules.
type RiskService interface {
	GetAssetRisk(ctx context.Context, assetID uint) (*dto.AssetRiskResponse, error)
	GetFamilyRisk(ctx context.Context, familyID uint) (*dto.FamilyRiskResponse, error)
	GetFamilyAssetRisks(ctx context.Context, familyID uint) ([]dto.AssetRiskResponse, error)
}

// NewRiskService creates a new risk service.
func NewRiskService(
	log *logger.Logger,
	familyRepo repository.FamilyRepository,
	assetRepo repository.AssetRepository,
	valuation ValuationService,
) RiskService {
	return &riskService{
		log:        log,
		familyRepo: familyRepo,
		assetRepo:  assetRepo,
		valuation:  valuation,
	}
}

type riskService struct {
	log        *logger.Logger
	familyRepo repository.FamilyRepository
	assetRepo  repository.AssetRepository
	valuation  ValuationService
}

func (s *riskService) GetAssetRisk(ctx context.Context, assetID uint) (*dto.AssetRiskResponse, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	family, err := s.familyRepo.FindByID(ctx, asset.FamilyID)
	if err != nil {
		return nil, err
	}
	holdings, err := s.valuation.GetHoldings(ctx, family)
	if err != nil {
		return nil, err
	}
	total := portfolioValue(holdings)

	position, err := s.valuation.GetPosition(ctx, asset)
	if err != nil {
		return nil, err
	}

	risk := engine.ScoreAsset(toEngineAsset(asset), position, total)
	return &dto.AssetRiskResponse{
		AssetID:   asset.ID,
		AssetName: asset.Name,
		AssetType: asset.AssetType,
		Risk:      risk,
	}, nil
}

func (s *riskService) GetFamilyRisk(ctx context.Context, familyID uint) (*dto.FamilyRiskResponse, error) {
	family, err := s.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	holdings, err := s.valuation.GetHoldings(ctx, family)
	if err != nil {
		return nil, err
	}

	risk := engine.ScoreFamily(holdings, portfolioValue(holdings))
	return &dto.FamilyRiskResponse{
		FamilyID: familyID,
		Risk:     risk,
	}, nil
}

func (s *riskService) GetFamilyAssetRisks(ctx context.Context, familyID uint) ([]dto.AssetRiskResponse, error) {
	family, err := s.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	holdings, err := s.valuation.GetHoldings(ctx, family)
	if err != nil {
		return nil, err
	}
	total := portfolioValue(holdings)

	responses := make([]dto.AssetRiskResponse, 0, len(holdings))
	for _, h := range holdings {
		risk := engine.ScoreAsset(h.Asset, h.Position, total)
		responses = append(responses, dto.AssetRiskResponse{
			AssetID:   h.Asset.ID,
			AssetName: h.Asset.Name,
			AssetType: h.Asset.Type,
			Risk:      risk,
		})
	}
	return responses, nil
}

func portfolioValue(holdings []engine.Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += h.Position.CurrentValue
	}
	return total
}
