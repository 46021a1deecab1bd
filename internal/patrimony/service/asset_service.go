package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/logger"

	"gorm.io/datatypes"
)

// ErrUnknownAssetType is returned when an asset type is not one of the
// supported classes.
var ErrUnknownAssetType = errors.New("unknown asset type")

var validAssetTypes = map[string]bool{
	engine.AssetTypeRendaFixa:        true,
	engine.AssetTypeRendaVariavel:    true,
	engine.AssetTypeFundoImobiliario: true,
	engine.AssetTypeCriptomoeda:      true,
	engine.AssetTypeMoedaEstrangeira: true,
}

// AssetService manages assets and their derived positions.
type AssetService interface {
	CreateAsset(ctx context.Context, req *dto.CreateAssetRequest) (*dto.AssetResponse, error)
	GetAsset(ctx context.Context, id uint) (*dto.AssetResponse, error)
	GetAssetsByFamily(ctx context.Context, familyID uint) ([]*dto.AssetResponse, error)
	UpdateAsset(ctx context.Context, id uint, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	DeleteAsset(ctx context.Context, id uint) error
}

// NewAssetService creates a new asset service.
func NewAssetService(
	log *logger.Logger,
	assetRepo repository.AssetRepository,
	familyRepo repository.FamilyRepository,
	valuation ValuationService,
) AssetService {
	return &assetService{
		log:        log,
		assetRepo:  assetRepo,
		familyRepo: familyRepo,
		valuation:  valuation,
	}
}

type assetService struct {
	log        *logger.Logger
	assetRepo  repository.AssetRepository
	familyRepo repository.FamilyRepository
	valuation  ValuationService
}

func (s *assetService) CreateAsset(ctx context.Context, req *dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if err := validateAssetFields(req.Name, req.AssetType, req.Details); err != nil {
		return nil, err
	}
	if _, err := s.familyRepo.FindByID(ctx, req.FamilyID); err != nil {
		return nil, err
	}

	asset := &entity.Asset{
		Name:      req.Name,
		AssetType: req.AssetType,
		FamilyID:  req.FamilyID,
		Details:   datatypes.JSON(req.Details),
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "Created asset",
		logger.IntField("asset_id", int(asset.ID)),
		logger.StringField("asset_type", asset.AssetType))

	return s.mapToAssetResponse(asset, nil), nil
}

func (s *assetService) GetAsset(ctx context.Context, id uint) (*dto.AssetResponse, error) {
	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	position, err := s.valuation.GetPosition(ctx, asset)
	if err != nil {
		return nil, err
	}
	return s.mapToAssetResponse(asset, &position), nil
}

func (s *assetService) GetAssetsByFamily(ctx context.Context, familyID uint) ([]*dto.AssetResponse, error) {
	assets, err := s.assetRepo.FindByFamilyID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AssetResponse, 0, len(assets))
	for i := range assets {
		position, err := s.valuation.GetPosition(ctx, &assets[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, s.mapToAssetResponse(&assets[i], &position))
	}
	return responses, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, id uint, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if err := validateAssetFields(req.Name, req.AssetType, req.Details); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset.Name = req.Name
	asset.AssetType = req.AssetType
	asset.Details = datatypes.JSON(req.Details)
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	// Classification changes affect risk, not the cached position, but the
	// update may also carry a ticker change that redirects quotes.
	if err := s.valuation.InvalidateAsset(ctx, asset.FamilyID, asset.ID); err != nil {
		s.log.WarnContext(ctx, "Failed to invalidate position cache", logger.ErrorField(err))
	}

	position, err := s.valuation.GetPosition(ctx, asset)
	if err != nil {
		return nil, err
	}
	return s.mapToAssetResponse(asset, &position), nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id uint) error {
	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.assetRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.valuation.InvalidateAsset(ctx, asset.FamilyID, asset.ID); err != nil {
		s.log.WarnContext(ctx, "Failed to invalidate position cache", logger.ErrorField(err))
	}
	return nil
}

func (s *assetService) mapToAssetResponse(asset *entity.Asset, position *engine.Position) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:        asset.ID,
		Name:      asset.Name,
		AssetType: asset.AssetType,
		FamilyID:  asset.FamilyID,
		Details:   json.RawMessage(asset.Details),
		Position:  position,
		CreatedAt: asset.CreatedAt,
	}
}

func validateAssetFields(name, assetType string, details json.RawMessage) error {
	if name == "" {
		return errors.New("asset name is required")
	}
	if !validAssetTypes[assetType] {
		return fmt.Errorf("%w: %s", ErrUnknownAssetType, assetType)
	}
	if len(details) > 0 {
		var parsed engine.AssetDetails
		if err := json.Unmarshal(details, &parsed); err != nil {
			return fmt.Errorf("invalid asset details: %w", err)
		}
	}
	return nil
}
