package service

import (
	"context"
	"fmt"
	"testing"

	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionFixture(t *testing.T) (TransactionService, *fakeTransactionRepo, *fakeValuation) {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	txRepo := newFakeTransactionRepo()
	assetRepo := newFakeAssetRepo(txRepo)
	valuation := &fakeValuation{}

	require.NoError(t, assetRepo.Create(context.Background(), &entity.Asset{
		ID:        1,
		Name:      "PETR4",
		AssetType: "renda_variavel",
		FamilyID:  1,
	}))

	return NewTransactionService(log, txRepo, assetRepo, valuation), txRepo, valuation
}

func createReq(txType string, qty, price float64, date string) *dto.CreateTransactionRequest {
	return &dto.CreateTransactionRequest{
		AssetID:         1,
		TransactionType: txType,
		Quantity:        qty,
		UnitPrice:       price,
		TransactionDate: date,
	}
}

func TestCreateTransactionBuy(t *testing.T) {
	svc, txRepo, valuation := newTransactionFixture(t)

	resp, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, 1000.0, resp.TotalValue)
	assert.Len(t, txRepo.txs, 1)
	assert.Contains(t, valuation.invalidated, uint(1))
}

func TestCreateTransactionFieldValidation(t *testing.T) {
	svc, txRepo, _ := newTransactionFixture(t)

	tests := []struct {
		name string
		req  *dto.CreateTransactionRequest
	}{
		{"unknown type", createReq("transfer", 10, 10, "2024-01-10")},
		{"zero quantity", createReq("buy", 0, 10, "2024-01-10")},
		{"negative quantity", createReq("buy", -5, 10, "2024-01-10")},
		{"zero price", createReq("buy", 10, 0, "2024-01-10")},
		{"bad date", createReq("buy", 10, 10, "10/01/2024")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTransaction(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidTransaction)
		})
	}

	assert.Empty(t, txRepo.txs)
}

func TestCreateSellWithoutHoldings(t *testing.T) {
	svc, txRepo, _ := newTransactionFixture(t)

	_, err := svc.CreateTransaction(context.Background(), createReq("sell", 10, 15.0, "2024-01-10"))
	require.ErrorIs(t, err, ErrUncoveredSell)
	assert.Empty(t, txRepo.txs)
}

func TestCreateSellExceedingHoldings(t *testing.T) {
	svc, txRepo, _ := newTransactionFixture(t)

	_, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)

	_, err = svc.CreateTransaction(context.Background(), createReq("sell", 150, 12.0, "2024-02-01"))
	require.ErrorIs(t, err, ErrUncoveredSell)
	assert.Len(t, txRepo.txs, 1)
}

func TestCreateSellDatedBeforeBuy(t *testing.T) {
	svc, _, _ := newTransactionFixture(t)

	_, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-02-01"))
	require.NoError(t, err)

	// The sell predates the buy, so the chronological replay goes negative.
	_, err = svc.CreateTransaction(context.Background(), createReq("sell", 50, 12.0, "2024-01-15"))
	require.ErrorIs(t, err, ErrUncoveredSell)
}

func TestCreateValidSellAfterBuy(t *testing.T) {
	svc, txRepo, _ := newTransactionFixture(t)

	_, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)

	resp, err := svc.CreateTransaction(context.Background(), createReq("sell", 30, 15.0, "2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, 450.0, resp.TotalValue)
	assert.Len(t, txRepo.txs, 2)
}

func TestUpdateShrinkingCoveringBuyRejected(t *testing.T) {
	svc, txRepo, _ := newTransactionFixture(t)

	buy, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), createReq("sell", 80, 12.0, "2024-02-01"))
	require.NoError(t, err)

	_, err = svc.UpdateTransaction(context.Background(), buy.ID, &dto.UpdateTransactionRequest{
		Quantity:        50,
		UnitPrice:       10.0,
		TransactionDate: "2024-01-10",
	})
	require.ErrorIs(t, err, ErrUncoveredSell)

	stored, err := txRepo.FindByID(context.Background(), buy.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.Quantity)
}

func TestUpdateRecomputesTotalValue(t *testing.T) {
	svc, _, valuation := newTransactionFixture(t)

	buy, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)

	updated, err := svc.UpdateTransaction(context.Background(), buy.ID, &dto.UpdateTransactionRequest{
		Quantity:        50,
		UnitPrice:       12.0,
		TransactionDate: "2024-01-12",
	})
	require.NoError(t, err)
	assert.Equal(t, 600.0, updated.TotalValue)
	assert.Equal(t, "2024-01-12", updated.TransactionDate.Format("2006-01-02"))
	assert.GreaterOrEqual(t, len(valuation.invalidated), 2)
}

func TestDeleteCoveringBuyRejected(t *testing.T) {
	svc, txRepo, _ := newTransactionFixture(t)

	buy, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), createReq("sell", 50, 12.0, "2024-02-01"))
	require.NoError(t, err)

	err = svc.DeleteTransaction(context.Background(), buy.ID)
	require.ErrorIs(t, err, ErrUncoveredSell)
	assert.Len(t, txRepo.txs, 2)
}

func TestDeleteSellAllowed(t *testing.T) {
	svc, txRepo, _ := newTransactionFixture(t)

	_, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)
	sell, err := svc.CreateTransaction(context.Background(), createReq("sell", 50, 12.0, "2024-02-01"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(context.Background(), sell.ID))
	assert.Len(t, txRepo.txs, 1)
}

func TestGetTransactionsByAssetSummary(t *testing.T) {
	svc, _, _ := newTransactionFixture(t)

	_, err := svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), createReq("sell", 30, 15.0, "2024-02-01"))
	require.NoError(t, err)

	summary, err := svc.GetTransactionsByAsset(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "PETR4", summary.AssetName)
	assert.Len(t, summary.Transactions, 2)
	assert.Equal(t, 70.0, summary.Position.Quantity)
	assert.Equal(t, 10.0, summary.Position.AverageCost)
	assert.Equal(t, 150.0, summary.Position.RealizedGainLoss)
}

func TestLedgerOrderingIndependentOfInsertion(t *testing.T) {
	svc, _, _ := newTransactionFixture(t)

	// Records arrive out of chronological order; replay must still see the
	// January buy before the February sell.
	_, err := svc.CreateTransaction(context.Background(), createReq("buy", 10, 10.0, "2024-03-01"))
	require.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), createReq("buy", 100, 10.0, "2024-01-10"))
	require.NoError(t, err)
	_, err = svc.CreateTransaction(context.Background(), createReq("sell", 90, 12.0, "2024-02-01"))
	require.NoError(t, err)

	summary, err := svc.GetTransactionsByAsset(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, summary.Position.Quantity)

	for i := 1; i < len(summary.Transactions); i++ {
		prev, cur := summary.Transactions[i-1], summary.Transactions[i]
		assert.False(t, cur.TransactionDate.Before(prev.TransactionDate),
			fmt.Sprintf("transaction %d out of order", i))
	}
}
