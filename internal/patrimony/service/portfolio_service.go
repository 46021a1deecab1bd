package service

import (
	"context"
	"errors"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/logger"
)

var (
	// ErrInsufficientBalance is returned when a withdrawal exceeds the
	// family's cash balance.
	ErrInsufficientBalance = errors.New("insufficient cash balance")
	// ErrInvalidAmount is returned when a cash operation amount is not
	// strictly positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// PortfolioService manages families and their aggregated patrimony.
type PortfolioService interface {
	CreateFamily(ctx context.Context, req *dto.CreateFamilyRequest) (*dto.FamilyResponse, error)
	GetFamily(ctx context.Context, id uint) (*dto.FamilyResponse, error)
	GetAllFamilies(ctx context.Context) ([]*dto.FamilyResponse, error)
	GetBalance(ctx context.Context, familyID uint) (*dto.FamilyBalanceResponse, error)
	Deposit(ctx context.Context, familyID uint, req *dto.CashOperationRequest) (*dto.FamilyResponse, error)
	Withdraw(ctx context.Context, familyID uint, req *dto.CashOperationRequest) (*dto.FamilyResponse, error)
	DeleteFamily(ctx context.Context, id uint) error
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(
	log *logger.Logger,
	familyRepo repository.FamilyRepository,
	valuation ValuationService,
) PortfolioService {
	return &portfolioService{
		log:        log,
		familyRepo: familyRepo,
		valuation:  valuation,
	}
}

type portfolioService struct {
	log        *logger.Logger
	familyRepo repository.FamilyRepository
	valuation  ValuationService
}

func (s *portfolioService) CreateFamily(ctx context.Context, req *dto.CreateFamilyRequest) (*dto.FamilyResponse, error) {
	if req.CashBalance < 0 {
		return nil, ErrInvalidAmount
	}
	family := &entity.Family{
		Name:        req.Name,
		CashBalance: engine.Round2(req.CashBalance),
	}
	if err := s.familyRepo.Create(ctx, family); err != nil {
		return nil, err
	}
	return s.mapToFamilyResponse(family), nil
}

func (s *portfolioService) GetFamily(ctx context.Context, id uint) (*dto.FamilyResponse, error) {
	family, err := s.familyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapToFamilyResponse(family), nil
}

func (s *portfolioService) GetAllFamilies(ctx context.Context) ([]*dto.FamilyResponse, error) {
	families, err := s.familyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.FamilyResponse, 0, len(families))
	for i := range families {
		responses = append(responses, s.mapToFamilyResponse(&families[i]))
	}
	return responses, nil
}

// GetBalance values every asset and aggregates the family patrimony.
func (s *portfolioService) GetBalance(ctx context.Context, familyID uint) (*dto.FamilyBalanceResponse, error) {
	family, err := s.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	holdings, err := s.valuation.GetHoldings(ctx, family)
	if err != nil {
		return nil, err
	}

	summary := engine.Aggregate(holdings, family.CashBalance)
	return &dto.FamilyBalanceResponse{
		FamilyID:        family.ID,
		CashBalance:     summary.CashBalance,
		TotalInvested:   summary.TotalInvested,
		TotalPatrimony:  summary.TotalPatrimony,
		PercentInvested: summary.PercentInvested,
		AssetAllocation: summary.Allocation,
	}, nil
}

func (s *portfolioService) Deposit(ctx context.Context, familyID uint, req *dto.CashOperationRequest) (*dto.FamilyResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.applyCashOperation(ctx, familyID, req.Amount)
}

func (s *portfolioService) Withdraw(ctx context.Context, familyID uint, req *dto.CashOperationRequest) (*dto.FamilyResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.applyCashOperation(ctx, familyID, -req.Amount)
}

func (s *portfolioService) DeleteFamily(ctx context.Context, id uint) error {
	if _, err := s.familyRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.familyRepo.Delete(ctx, id)
}

func (s *portfolioService) applyCashOperation(ctx context.Context, familyID uint, delta float64) (*dto.FamilyResponse, error) {
	family, err := s.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	newBalance := engine.Round2(family.CashBalance + delta)
	if newBalance < 0 {
		return nil, ErrInsufficientBalance
	}

	if err := s.familyRepo.UpdateCashBalance(ctx, familyID, newBalance); err != nil {
		return nil, err
	}
	family.CashBalance = newBalance

	s.log.DebugContext(ctx, "Applied cash operation",
		logger.IntField("family_id", int(familyID)),
		logger.Float64Field("delta", delta),
		logger.Float64Field("new_balance", newBalance))

	return s.mapToFamilyResponse(family), nil
}

func (s *portfolioService) mapToFamilyResponse(family *entity.Family) *dto.FamilyResponse {
	return &dto.FamilyResponse{
		ID:          family.ID,
		Name:        family.Name,
		CashBalance: family.CashBalance,
		CreatedAt:   family.CreatedAt,
	}
}
