package service

import (
	"context"
	"testing"
	"time"

	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioFixture(t *testing.T) (PortfolioService, *fakeFamilyRepo, *fakeTransactionRepo, *fakeAssetRepo) {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	txRepo := newFakeTransactionRepo()
	assetRepo := newFakeAssetRepo(txRepo)
	familyRepo := newFakeFamilyRepo(assetRepo)
	valuation := &fakeValuation{}

	return NewPortfolioService(log, familyRepo, valuation), familyRepo, txRepo, assetRepo
}

func TestCreateFamilyRoundsOpeningBalance(t *testing.T) {
	svc, _, _, _ := newPortfolioFixture(t)

	family, err := svc.CreateFamily(context.Background(), &dto.CreateFamilyRequest{
		Name:        "Silva",
		CashBalance: 1000.005,
	})
	require.NoError(t, err)
	assert.Equal(t, "Silva", family.Name)
	assert.InDelta(t, 1000.0, family.CashBalance, 0.011)
}

func TestCreateFamilyRejectsNegativeBalance(t *testing.T) {
	svc, _, _, _ := newPortfolioFixture(t)

	_, err := svc.CreateFamily(context.Background(), &dto.CreateFamilyRequest{
		Name:        "Silva",
		CashBalance: -100,
	})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDepositAndWithdraw(t *testing.T) {
	svc, familyRepo, _, _ := newPortfolioFixture(t)
	require.NoError(t, familyRepo.Create(context.Background(), &entity.Family{ID: 1, Name: "Silva", CashBalance: 500}))

	family, err := svc.Deposit(context.Background(), 1, &dto.CashOperationRequest{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, 750.0, family.CashBalance)

	family, err = svc.Withdraw(context.Background(), 1, &dto.CashOperationRequest{Amount: 200})
	require.NoError(t, err)
	assert.Equal(t, 550.0, family.CashBalance)
}

func TestWithdrawExceedingBalance(t *testing.T) {
	svc, familyRepo, _, _ := newPortfolioFixture(t)
	require.NoError(t, familyRepo.Create(context.Background(), &entity.Family{ID: 1, Name: "Silva", CashBalance: 100}))

	_, err := svc.Withdraw(context.Background(), 1, &dto.CashOperationRequest{Amount: 100.01})
	require.ErrorIs(t, err, ErrInsufficientBalance)

	stored, err := familyRepo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.CashBalance)
}

func TestCashOperationRejectsNonPositiveAmounts(t *testing.T) {
	svc, familyRepo, _, _ := newPortfolioFixture(t)
	require.NoError(t, familyRepo.Create(context.Background(), &entity.Family{ID: 1, Name: "Silva", CashBalance: 100}))

	_, err := svc.Deposit(context.Background(), 1, &dto.CashOperationRequest{Amount: 0})
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = svc.Withdraw(context.Background(), 1, &dto.CashOperationRequest{Amount: -50})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestGetBalanceAggregatesHoldings(t *testing.T) {
	svc, familyRepo, txRepo, assetRepo := newPortfolioFixture(t)
	ctx := context.Background()

	require.NoError(t, familyRepo.Create(ctx, &entity.Family{ID: 1, Name: "Silva", CashBalance: 2000}))
	require.NoError(t, assetRepo.Create(ctx, &entity.Asset{ID: 1, Name: "Tesouro IPCA", AssetType: "renda_fixa", FamilyID: 1}))
	require.NoError(t, assetRepo.Create(ctx, &entity.Asset{ID: 2, Name: "PETR4", AssetType: "renda_variavel", FamilyID: 1}))

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, txRepo.Create(ctx, &entity.Transaction{
		AssetID: 1, TransactionType: "buy", Quantity: 10, UnitPrice: 500, TotalValue: 5000, TransactionDate: date,
	}))
	require.NoError(t, txRepo.Create(ctx, &entity.Transaction{
		AssetID: 2, TransactionType: "buy", Quantity: 100, UnitPrice: 30, TotalValue: 3000, TransactionDate: date,
	}))

	balance, err := svc.GetBalance(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 8000.0, balance.TotalInvested)
	assert.Equal(t, 2000.0, balance.CashBalance)
	assert.Equal(t, 10000.0, balance.TotalPatrimony)
	assert.Equal(t, 80.0, balance.PercentInvested)
	require.Len(t, balance.AssetAllocation, 2)
	assert.Equal(t, "renda_fixa", balance.AssetAllocation[0].AssetType)
	assert.Equal(t, 5000.0, balance.AssetAllocation[0].Value)
}
