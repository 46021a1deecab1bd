package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func govScore(v int) *int { return &v }

func TestScoreAssetRules(t *testing.T) {
	tests := []struct {
		name     string
		asset    Asset
		position Position
		want     AssetRisk
	}{
		{
			name:  "renda fixa without indexing stays low",
			asset: Asset{Type: AssetTypeRendaFixa, Details: AssetDetails{Indexador: "cdi"}},
			want:  AssetRisk{},
		},
		{
			name:  "renda variavel carries high market risk",
			asset: Asset{Type: AssetTypeRendaVariavel},
			want:  AssetRisk{MarketRisk: RiskHigh},
		},
		{
			name:  "crypto sector escalates market risk to critical",
			asset: Asset{Type: AssetTypeRendaVariavel, Details: AssetDetails{Setor: "cripto"}},
			want:  AssetRisk{MarketRisk: RiskCritical, FinalClassification: RiskCritical},
		},
		{
			name:     "large position is concentrated",
			asset:    Asset{Type: AssetTypeRendaFixa},
			position: Position{CurrentValue: 600000},
			want:     AssetRisk{ConcentrationRisk: RiskHigh},
		},
		{
			name:  "weak governance is critical for variable income",
			asset: Asset{Type: AssetTypeRendaVariavel, Details: AssetDetails{Governanca: govScore(25)}},
			want:  AssetRisk{MarketRisk: RiskHigh, GovernanceScore: 25, FinalClassification: RiskCritical},
		},
		{
			name:  "mid governance is high for variable income",
			asset: Asset{Type: AssetTypeRendaVariavel, Details: AssetDetails{Governanca: govScore(45)}},
			want:  AssetRisk{MarketRisk: RiskHigh, GovernanceScore: 45, FinalClassification: RiskHigh},
		},
		{
			name:  "governance ignored outside variable income",
			asset: Asset{Type: AssetTypeRendaFixa, Details: AssetDetails{Governanca: govScore(10)}},
			want:  AssetRisk{GovernanceScore: 10},
		},
		{
			name:  "low liquidity forces high classification",
			asset: Asset{Type: AssetTypeFundoImobiliario, Details: AssetDetails{Liquidez: LiquidezBaixa}},
			want:  AssetRisk{LiquidityRisk: RiskHigh, FinalClassification: RiskHigh},
		},
		{
			name:  "indexed fixed income is low even when illiquid",
			asset: Asset{Type: AssetTypeRendaFixa, Details: AssetDetails{Indexador: "ipca", Liquidez: LiquidezBaixa}},
			want:  AssetRisk{LiquidityRisk: RiskHigh, FinalClassification: RiskLow},
		},
		{
			name:  "selic indexing is low risk",
			asset: Asset{Type: AssetTypeRendaFixa, Details: AssetDetails{Indexador: "selic"}},
			want:  AssetRisk{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreAsset(tt.asset, tt.position, 1000000)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRiskLevelOrderingAndNames(t *testing.T) {
	assert.True(t, RiskLow < RiskMedium)
	assert.True(t, RiskMedium < RiskHigh)
	assert.True(t, RiskHigh < RiskCritical)

	assert.Equal(t, "low", RiskLow.String())
	assert.Equal(t, "critical", RiskCritical.String())

	assert.Equal(t, RiskHigh, escalate(RiskHigh, RiskMedium))
	assert.Equal(t, RiskCritical, escalate(RiskHigh, RiskCritical))
}

func TestScoreFamilyEmpty(t *testing.T) {
	risk := ScoreFamily(nil, 0)

	assert.Equal(t, 0, risk.Score)
	assert.Equal(t, 0, risk.Concentration)
	assert.Equal(t, 0, risk.Volatility)
	assert.Equal(t, 0, risk.AggregateLiquidity)
	assert.Equal(t, 0, risk.CurrencyExposure)
	assert.Equal(t, RiskLow, risk.FinalClassification)
}

func TestScoreFamilySingleIndexedBond(t *testing.T) {
	holdings := []Holding{
		holding(1, "Tesouro IPCA", AssetTypeRendaFixa, 100000, AssetDetails{Indexador: "ipca"}),
	}

	risk := ScoreFamily(holdings, 100000)

	assert.Equal(t, 100, risk.Concentration)
	assert.Equal(t, 0, risk.Volatility)
	assert.Equal(t, 0, risk.AggregateLiquidity)
	assert.Equal(t, 0, risk.CurrencyExposure)
	assert.Equal(t, 30, risk.Score) // 0.30 * 100
	assert.Equal(t, RiskMedium, risk.FinalClassification)
}

func TestScoreFamilyMixedPortfolio(t *testing.T) {
	holdings := []Holding{
		holding(1, "Token Fund", AssetTypeRendaVariavel, 600000,
			AssetDetails{Setor: "cripto", Moeda: "USD", Liquidez: LiquidezBaixa}),
		holding(2, "CDB", AssetTypeRendaFixa, 100000, AssetDetails{}),
	}

	risk := ScoreFamily(holdings, 700000)

	assert.Equal(t, 86, risk.Concentration)      // round(600k/700k*100)
	assert.Equal(t, 10, risk.Volatility)         // round(20 * 1/2)
	assert.Equal(t, 20, risk.AggregateLiquidity) // illiquid share > 50%
	assert.Equal(t, 8, risk.CurrencyExposure)    // round(15 * 1/2)
	assert.Equal(t, 0, risk.RegulatoryRisk)
	// 0.30*86 + 0.20*10 + 0.20*20 + 0.15*8 = 33.0
	assert.Equal(t, 33, risk.Score)
	assert.Equal(t, RiskMedium, risk.FinalClassification)
}

func TestClassifyScoreBands(t *testing.T) {
	assert.Equal(t, RiskLow, classifyScore(29))
	assert.Equal(t, RiskMedium, classifyScore(30))
	assert.Equal(t, RiskMedium, classifyScore(49))
	assert.Equal(t, RiskHigh, classifyScore(50))
	assert.Equal(t, RiskHigh, classifyScore(69))
	assert.Equal(t, RiskCritical, classifyScore(70))
}
