package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKind(alerts []Alert, kind AlertKind) int {
	var n int
	for _, a := range alerts {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

func TestGenerateAlertsConcentration(t *testing.T) {
	holdings := []Holding{
		holding(1, "Fazenda", AssetTypeFundoImobiliario, 70000, AssetDetails{}),
		holding(2, "CDB", AssetTypeRendaFixa, 20000, AssetDetails{}),
	}

	delta := GenerateAlerts(10, holdings, time.Now())

	require.Len(t, delta.ToUpsert, 1)
	alert := delta.ToUpsert[0]
	assert.Equal(t, AlertKindConcentration, alert.Kind)
	assert.Equal(t, SeverityWarning, alert.Severity)
	assert.Equal(t, uint(10), alert.FamilyID)
	require.NotNil(t, alert.AssetID)
	assert.Equal(t, uint(1), *alert.AssetID)
	assert.Contains(t, alert.Message, "77.8%")
	assert.NotEmpty(t, alert.ID)

	assert.ElementsMatch(t, []AlertKind{AlertKindConcentration, AlertKindLiquidity}, delta.ToRetract)
}

func TestGenerateAlertsSingleAssetNeverConcentrated(t *testing.T) {
	holdings := []Holding{
		holding(1, "Fazenda", AssetTypeFundoImobiliario, 90000, AssetDetails{}),
	}

	delta := GenerateAlerts(10, holdings, time.Now())
	assert.Zero(t, countKind(delta.ToUpsert, AlertKindConcentration))
}

func TestGenerateAlertsLiquidity(t *testing.T) {
	holdings := []Holding{
		holding(1, "Fazenda", AssetTypeFundoImobiliario, 60000, AssetDetails{Liquidez: LiquidezBaixa}),
		holding(2, "Obra de arte", AssetTypeFundoImobiliario, 50000, AssetDetails{Liquidez: LiquidezBaixa}),
	}

	delta := GenerateAlerts(10, holdings, time.Now())

	// Exactly one family-level liquidity alert, regardless of how many
	// illiquid assets contribute to it.
	require.Equal(t, 1, countKind(delta.ToUpsert, AlertKindLiquidity))
	for _, a := range delta.ToUpsert {
		if a.Kind == AlertKindLiquidity {
			assert.Equal(t, SeverityDanger, a.Severity)
			assert.Nil(t, a.AssetID)
		}
	}
}

func TestGenerateAlertsIdempotent(t *testing.T) {
	holdings := []Holding{
		holding(1, "Fazenda", AssetTypeFundoImobiliario, 70000, AssetDetails{}),
		holding(2, "CDB", AssetTypeRendaFixa, 20000, AssetDetails{}),
	}

	first := GenerateAlerts(10, holdings, time.Now())
	second := GenerateAlerts(10, holdings, time.Now())

	// Replace-all regeneration: the alert set per kind is stable across
	// repeated triggers on an unchanged snapshot.
	assert.Equal(t, countKind(first.ToUpsert, AlertKindConcentration), countKind(second.ToUpsert, AlertKindConcentration))
	assert.Equal(t, countKind(first.ToUpsert, AlertKindLiquidity), countKind(second.ToUpsert, AlertKindLiquidity))
	assert.Equal(t, first.ToRetract, second.ToRetract)
}

func TestGenerateAlertsConditionGoneRemovesAlert(t *testing.T) {
	holdings := []Holding{
		holding(1, "Fazenda", AssetTypeFundoImobiliario, 70000, AssetDetails{}),
		holding(2, "CDB", AssetTypeRendaFixa, 25000, AssetDetails{}),
		holding(3, "PETR4", AssetTypeRendaVariavel, 25000, AssetDetails{}),
		holding(4, "Tesouro IPCA", AssetTypeRendaFixa, 25000, AssetDetails{}),
	}
	require.Equal(t, 1, countKind(GenerateAlerts(10, holdings, time.Now()).ToUpsert, AlertKindConcentration))

	// Asset 1 drops below the 30% share threshold.
	holdings[0].Position.CurrentValue = 25000
	delta := GenerateAlerts(10, holdings, time.Now())

	assert.Zero(t, countKind(delta.ToUpsert, AlertKindConcentration))
	// The managed kinds are still retracted, which deletes the stale alert.
	assert.ElementsMatch(t, []AlertKind{AlertKindConcentration, AlertKindLiquidity}, delta.ToRetract)
}

func TestGenerateAlertsEmptyPortfolio(t *testing.T) {
	delta := GenerateAlerts(10, nil, time.Now())

	assert.Empty(t, delta.ToUpsert)
	assert.ElementsMatch(t, []AlertKind{AlertKindConcentration, AlertKindLiquidity}, delta.ToRetract)
}
