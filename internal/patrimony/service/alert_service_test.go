package service

import (
	"context"
	"testing"
	"time"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlertFixture(t *testing.T) (AlertService, *fakeAlertRepo, *fakeTransactionRepo, *fakeAssetRepo, *fakeFamilyRepo, *fakeNotifier) {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	txRepo := newFakeTransactionRepo()
	assetRepo := newFakeAssetRepo(txRepo)
	familyRepo := newFakeFamilyRepo(assetRepo)
	alertRepo := newFakeAlertRepo()
	valuation := &fakeValuation{}
	notifier := &fakeNotifier{}

	svc := NewAlertService(log, familyRepo, alertRepo, valuation, notifier)
	return svc, alertRepo, txRepo, assetRepo, familyRepo, notifier
}

func seedHolding(t *testing.T, txRepo *fakeTransactionRepo, assetRepo *fakeAssetRepo, id uint, name string, value float64, details string) {
	t.Helper()
	ctx := context.Background()
	asset := &entity.Asset{ID: id, Name: name, AssetType: "renda_variavel", FamilyID: 1}
	if details != "" {
		asset.Details = []byte(details)
	}
	require.NoError(t, assetRepo.Create(ctx, asset))
	require.NoError(t, txRepo.Create(ctx, &entity.Transaction{
		AssetID:         id,
		TransactionType: "buy",
		Quantity:        value,
		UnitPrice:       1,
		TotalValue:      value,
		TransactionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}))
}

func TestTriggerForFamilyGeneratesConcentrationAlert(t *testing.T) {
	svc, alertRepo, txRepo, assetRepo, familyRepo, notifier := newAlertFixture(t)
	ctx := context.Background()

	require.NoError(t, familyRepo.Create(ctx, &entity.Family{ID: 1, Name: "Silva"}))
	seedHolding(t, txRepo, assetRepo, 1, "PETR4", 70000, "")
	seedHolding(t, txRepo, assetRepo, 2, "Tesouro", 20000, "")

	result, err := svc.TriggerForFamily(ctx, 1)
	require.NoError(t, err)

	require.Equal(t, 1, result.Generated)
	assert.Equal(t, string(engine.AlertKindConcentration), result.Alerts[0].Kind)
	assert.Len(t, alertRepo.alerts, 1)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Silva")
}

func TestTriggerForFamilyRetractsStaleAlerts(t *testing.T) {
	svc, alertRepo, txRepo, assetRepo, familyRepo, _ := newAlertFixture(t)
	ctx := context.Background()

	require.NoError(t, familyRepo.Create(ctx, &entity.Family{ID: 1, Name: "Silva"}))
	seedHolding(t, txRepo, assetRepo, 1, "PETR4", 70000, "")
	seedHolding(t, txRepo, assetRepo, 2, "VALE3", 25000, "")
	seedHolding(t, txRepo, assetRepo, 3, "ITUB4", 25000, "")
	seedHolding(t, txRepo, assetRepo, 4, "BBDC4", 25000, "")

	result, err := svc.TriggerForFamily(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, result.Generated)

	// Balance the portfolio; the next trigger must retract the stale alert.
	require.NoError(t, txRepo.Create(ctx, &entity.Transaction{
		AssetID:         1,
		TransactionType: "sell",
		Quantity:        45000,
		UnitPrice:       1,
		TotalValue:      45000,
		TransactionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}))

	result, err = svc.TriggerForFamily(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, result.Generated)
	assert.Empty(t, alertRepo.alerts)
}

func TestTriggerForFamilyIsIdempotent(t *testing.T) {
	svc, alertRepo, txRepo, assetRepo, familyRepo, _ := newAlertFixture(t)
	ctx := context.Background()

	require.NoError(t, familyRepo.Create(ctx, &entity.Family{ID: 1, Name: "Silva"}))
	seedHolding(t, txRepo, assetRepo, 1, "FII XPTO", 60000, `{"liquidez":"baixa"}`)
	seedHolding(t, txRepo, assetRepo, 2, "Tesouro", 25000, "")
	seedHolding(t, txRepo, assetRepo, 3, "CDB", 15000, "")

	for i := 0; i < 3; i++ {
		_, err := svc.TriggerForFamily(ctx, 1)
		require.NoError(t, err)
	}

	// The 60% holding trips both thresholds; the 25% and 15% holdings trip
	// neither. Exactly one concentration alert and one liquidity alert, no
	// matter how often the trigger runs.
	assert.Len(t, alertRepo.alerts, 2)
}

func TestTriggerForFamilyEmptyPortfolio(t *testing.T) {
	svc, alertRepo, _, _, familyRepo, notifier := newAlertFixture(t)
	ctx := context.Background()

	require.NoError(t, familyRepo.Create(ctx, &entity.Family{ID: 1, Name: "Silva"}))

	result, err := svc.TriggerForFamily(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, result.Generated)
	assert.Empty(t, alertRepo.alerts)
	assert.Empty(t, notifier.messages)
}
