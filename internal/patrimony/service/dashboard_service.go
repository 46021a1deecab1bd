package service

import (
	"context"
	"sort"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/logger"
)

const (
	dashboardTopAssets    = 5
	dashboardRecentAlerts = 5
)

// DashboardService assembles the family overview in one call.
type DashboardService interface {
	GetDashboard(ctx context.Context, familyID uint) (*dto.DashboardResponse, error)
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	log *logger.Logger,
	familyRepo repository.FamilyRepository,
	alertRepo repository.AlertRepository,
	valuation ValuationService,
) DashboardService {
	return &dashboardService{
		log:        log,
		familyRepo: familyRepo,
		alertRepo:  alertRepo,
		valuation:  valuation,
	}
}

type dashboardService struct {
	log        *logger.Logger
	familyRepo repository.FamilyRepository
	alertRepo  repository.AlertRepository
	valuation  ValuationService
}

func (s *dashboardService) GetDashboard(ctx context.Context, familyID uint) (*dto.DashboardResponse, error) {
	family, err := s.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, err
	}
	holdings, err := s.valuation.GetHoldings(ctx, family)
	if err != nil {
		return nil, err
	}

	summary := engine.Aggregate(holdings, family.CashBalance)
	risk := engine.ScoreFamily(holdings, summary.TotalInvested)

	topAssets := make([]dto.TopAsset, 0, len(holdings))
	for _, h := range holdings {
		topAssets = append(topAssets, dto.TopAsset{
			ID:        h.Asset.ID,
			Name:      h.Asset.Name,
			AssetType: h.Asset.Type,
			Value:     h.Position.CurrentValue,
		})
	}
	sort.Slice(topAssets, func(i, j int) bool {
		return topAssets[i].Value > topAssets[j].Value
	})
	if len(topAssets) > dashboardTopAssets {
		topAssets = topAssets[:dashboardTopAssets]
	}

	alerts, err := s.alertRepo.FindRecentByFamilyID(ctx, familyID, dashboardRecentAlerts)
	if err != nil {
		return nil, err
	}
	recentAlerts := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		recentAlerts = append(recentAlerts, toAlertResponse(&alerts[i]))
	}

	return &dto.DashboardResponse{
		FamilyID:     familyID,
		TotalValue:   summary.TotalPatrimony,
		AssetCount:   len(holdings),
		Distribution: summary.Allocation,
		TopAssets:    topAssets,
		RecentAlerts: recentAlerts,
		Risk:         risk,
	}, nil
}
