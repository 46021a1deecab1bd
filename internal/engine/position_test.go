package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testTx(id uint, kind TransactionKind, qty, price float64, date string) TransactionRecord {
	return TransactionRecord{
		ID:         id,
		AssetID:    1,
		Kind:       kind,
		Quantity:   qty,
		UnitPrice:  price,
		TotalValue: Round2(qty * price),
		Date:       day(date),
	}
}

func TestComputePositionEmptyLedger(t *testing.T) {
	pos, err := ComputePosition(nil, day("2026-01-01"), nil)
	require.NoError(t, err)
	assert.Equal(t, Position{}, pos)
}

func TestComputePositionSingleBuy(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionBuy, 100, 10.0, "2025-01-10"),
	}

	pos, err := ComputePosition(ledger, day("2026-01-01"), nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, pos.Quantity)
	assert.Equal(t, 10.0, pos.AverageCost)
	assert.Equal(t, 1000.0, pos.CurrentValue)
	assert.Equal(t, 1000.0, pos.TotalInvested)
	assert.Equal(t, 0.0, pos.TotalDivested)
	assert.Equal(t, 0.0, pos.RealizedGainLoss)
	assert.Equal(t, 0.0, pos.UnrealizedGainLoss)
}

func TestComputePositionBuysOnlyIsWeightedAverage(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionBuy, 100, 10.0, "2025-01-10"),
		testTx(2, TransactionBuy, 50, 16.0, "2025-02-10"),
	}

	pos, err := ComputePosition(ledger, day("2026-01-01"), nil)
	require.NoError(t, err)

	assert.Equal(t, 150.0, pos.Quantity)
	assert.Equal(t, 12.0, pos.AverageCost) // (1000 + 800) / 150
	assert.Equal(t, 1800.0, pos.TotalInvested)
	// With no sells, current value equals total invested.
	assert.Equal(t, pos.TotalInvested, pos.CurrentValue)
}

func TestComputePositionBuySellInterleaved(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionBuy, 100, 10.0, "2025-01-10"),
		testTx(2, TransactionBuy, 50, 12.0, "2025-02-10"),
		testTx(3, TransactionSell, 30, 15.0, "2025-03-10"),
	}

	pos, err := ComputePosition(ledger, day("2026-01-01"), nil)
	require.NoError(t, err)

	assert.Equal(t, 120.0, pos.Quantity)
	// Remaining 120 units drawn oldest-first from the buy queue:
	// 100@10 + 20@12 = 1240 over 120 units.
	assert.Equal(t, 10.33, pos.AverageCost)
	assert.Equal(t, 1239.6, pos.CurrentValue)
	assert.Equal(t, 1600.0, pos.TotalInvested)
	assert.Equal(t, 450.0, pos.TotalDivested)
	// FIFO basis of the sell: 30 units from the 100@10 lot.
	assert.Equal(t, 150.0, pos.RealizedGainLoss)
}

func TestComputePositionFullyDivested(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionBuy, 100, 10.0, "2025-01-10"),
		testTx(2, TransactionSell, 100, 12.0, "2025-05-10"),
	}

	pos, err := ComputePosition(ledger, day("2026-01-01"), nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, pos.Quantity)
	assert.Equal(t, 0.0, pos.AverageCost)
	assert.Equal(t, 0.0, pos.CurrentValue)
	assert.Equal(t, 200.0, pos.RealizedGainLoss)
}

func TestComputePositionAsOfFiltersLaterTransactions(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionBuy, 100, 10.0, "2025-01-10"),
		testTx(2, TransactionSell, 40, 15.0, "2025-06-10"),
	}

	pos, err := ComputePosition(ledger, day("2025-03-01"), nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, pos.Quantity)
	assert.Equal(t, 0.0, pos.TotalDivested)
	assert.Equal(t, 0.0, pos.RealizedGainLoss)
}

func TestComputePositionUnrealizedGain(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionBuy, 100, 10.0, "2025-01-10"),
	}

	price := 12.5
	pos, err := ComputePosition(ledger, day("2026-01-01"), &price)
	require.NoError(t, err)
	assert.Equal(t, 250.0, pos.UnrealizedGainLoss)

	// A missing price degrades to zero instead of failing.
	pos, err = ComputePosition(ledger, day("2026-01-01"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pos.UnrealizedGainLoss)
}

func TestComputePositionSellsOnlyIsIntegrityError(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionSell, 10, 15.0, "2025-01-10"),
	}

	_, err := ComputePosition(ledger, day("2026-01-01"), nil)

	var integrityErr *IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, uint(1), integrityErr.AssetID)
}

func TestComputePositionSellBeforeBuyIsIntegrityError(t *testing.T) {
	// Net quantity is positive, but the sell predates any buy lot.
	ledger := []TransactionRecord{
		testTx(1, TransactionSell, 10, 15.0, "2025-01-10"),
		testTx(2, TransactionBuy, 100, 10.0, "2025-02-10"),
	}

	_, err := ComputePosition(ledger, day("2026-01-01"), nil)

	var integrityErr *IntegrityError
	require.ErrorAs(t, err, &integrityErr)
}

func TestComputePositionFractionalQuantities(t *testing.T) {
	ledger := []TransactionRecord{
		testTx(1, TransactionBuy, 0.1234567, 100.0, "2025-01-10"),
		testTx(2, TransactionBuy, 0.2, 110.0, "2025-02-10"),
	}

	pos, err := ComputePosition(ledger, day("2026-01-01"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.323457, pos.Quantity)
}

func TestComputePositionDateTiesBrokenByID(t *testing.T) {
	// Same-day buy and sell: the buy was inserted first, so the sell is
	// covered and the ledger is valid.
	ledger := []TransactionRecord{
		testTx(2, TransactionSell, 50, 11.0, "2025-01-10"),
		testTx(1, TransactionBuy, 50, 10.0, "2025-01-10"),
	}

	pos, err := ComputePosition(ledger, day("2026-01-01"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pos.Quantity)
	assert.Equal(t, 50.0, pos.RealizedGainLoss)
}
