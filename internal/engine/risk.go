package engine

import (
	"encoding/json"
	"math"
)

// RiskLevel is a totally ordered severity scale. Rules only ever escalate a
// dimension via escalate(); nothing downgrades a level once set, with the
// single documented exception of the indexed fixed-income rule.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

var riskLevelNames = [...]string{"low", "medium", "high", "critical"}

func (l RiskLevel) String() string {
	if l < RiskLow || l > RiskCritical {
		return "low"
	}
	return riskLevelNames[l]
}

// MarshalJSON renders the level as its name.
func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// escalate returns the higher of the two levels.
func escalate(current, candidate RiskLevel) RiskLevel {
	if candidate > current {
		return candidate
	}
	return current
}

// AssetRisk holds per-dimension risk levels for a single asset.
type AssetRisk struct {
	MarketRisk          RiskLevel `json:"market_risk"`
	LiquidityRisk       RiskLevel `json:"liquidity_risk"`
	ConcentrationRisk   RiskLevel `json:"concentration_risk"`
	CreditRisk          RiskLevel `json:"credit_risk"`
	CurrencyRisk        RiskLevel `json:"currency_risk"`
	LegalRisk           RiskLevel `json:"legal_risk"`
	GovernanceScore     int       `json:"governance_score"`
	FinalClassification RiskLevel `json:"final_classification"`
}

// Per-asset value above which a holding is flagged as concentrated regardless
// of its share of the portfolio.
const concentrationValueLimit = 500_000

// ScoreAsset evaluates the per-asset risk rules in their fixed order.
// familyTotalValue is part of the scoring contract for callers that want to
// weigh concentration against the whole portfolio; the current rule set flags
// concentration on absolute value.
func ScoreAsset(asset Asset, position Position, familyTotalValue float64) AssetRisk {
	_ = familyTotalValue

	var r AssetRisk
	if asset.Details.Governanca != nil {
		r.GovernanceScore = *asset.Details.Governanca
	}

	// Rule 1: variable income carries market risk, crypto sector even more.
	if asset.Type == AssetTypeRendaVariavel {
		r.MarketRisk = escalate(r.MarketRisk, RiskHigh)
		if asset.Details.Setor == "cripto" {
			r.MarketRisk = escalate(r.MarketRisk, RiskCritical)
		}
	}

	// Rule 2: large absolute positions are concentrated.
	if position.CurrentValue > concentrationValueLimit {
		r.ConcentrationRisk = escalate(r.ConcentrationRisk, RiskHigh)
	}

	// Rule 3: governance score, only meaningful for variable income.
	if asset.Type == AssetTypeRendaVariavel && asset.Details.Governanca != nil {
		switch {
		case r.GovernanceScore < 30:
			r.FinalClassification = escalate(r.FinalClassification, RiskCritical)
		case r.GovernanceScore < 60:
			r.FinalClassification = escalate(r.FinalClassification, RiskHigh)
		}
	}

	// Rule 4: low liquidity alone forces a high classification.
	if asset.Details.Liquidez == LiquidezBaixa {
		r.LiquidityRisk = escalate(r.LiquidityRisk, RiskHigh)
		r.FinalClassification = escalate(r.FinalClassification, RiskHigh)
	}

	// Rule 5: inflation- or Selic-indexed fixed income is low risk. This is
	// the one rule allowed to lower the classification, and it never lowers
	// a critical one.
	if asset.Type == AssetTypeRendaFixa &&
		(asset.Details.Indexador == "ipca" || asset.Details.Indexador == "selic") {
		r.MarketRisk = RiskLow
		if r.FinalClassification != RiskCritical {
			r.FinalClassification = RiskLow
		}
	}

	// Rule 6: a critical dimension makes the whole asset critical.
	if r.MarketRisk == RiskCritical || r.LiquidityRisk == RiskCritical {
		r.FinalClassification = RiskCritical
	}

	return r
}

// FamilyRisk is the weighted family-level score and its dimensions, each on a
// 0-100 scale.
type FamilyRisk struct {
	Score               int       `json:"score"`
	Concentration       int       `json:"concentration"`
	Volatility          int       `json:"volatility"`
	AggregateLiquidity  int       `json:"aggregate_liquidity"`
	CurrencyExposure    int       `json:"currency_exposure"`
	RegulatoryRisk      int       `json:"regulatory_risk"`
	FinalClassification RiskLevel `json:"final_classification"`
}

// Weights of the family score dimensions.
const (
	weightConcentration    = 0.30
	weightVolatility       = 0.20
	weightLiquidity        = 0.20
	weightCurrencyExposure = 0.15
	weightRegulatory       = 0.15
)

// ScoreFamily computes the weighted family risk score from the holdings.
// With zero assets every dimension is zero and the classification is low.
func ScoreFamily(holdings []Holding, familyTotalValue float64) FamilyRisk {
	var risk FamilyRisk
	if len(holdings) == 0 {
		return risk
	}

	var maxValue, illiquidValue float64
	var countVariavel, countNonBRL int
	for _, h := range holdings {
		value := h.Position.CurrentValue
		if value > maxValue {
			maxValue = value
		}
		if h.Asset.Details.Liquidez == LiquidezBaixa {
			illiquidValue += value
		}
		if h.Asset.Type == AssetTypeRendaVariavel {
			countVariavel++
		}
		if h.Asset.Type == AssetTypeMoedaEstrangeira ||
			(h.Asset.Details.Moeda != "" && h.Asset.Details.Moeda != "BRL") {
			countNonBRL++
		}
	}

	count := float64(len(holdings))
	if familyTotalValue > 0 {
		risk.Concentration = int(math.Round(maxValue / familyTotalValue * 100))
		if illiquidValue/familyTotalValue > 0.5 {
			risk.AggregateLiquidity = 20
		}
	}
	risk.Volatility = int(math.Round(20 * float64(countVariavel) / count))
	risk.CurrencyExposure = int(math.Round(15 * float64(countNonBRL) / count))
	// Regulatory risk is a placeholder dimension, always zero today.
	risk.RegulatoryRisk = 0

	risk.Score = int(math.Round(
		weightConcentration*float64(risk.Concentration) +
			weightVolatility*float64(risk.Volatility) +
			weightLiquidity*float64(risk.AggregateLiquidity) +
			weightCurrencyExposure*float64(risk.CurrencyExposure) +
			weightRegulatory*float64(risk.RegulatoryRisk)))
	risk.FinalClassification = classifyScore(risk.Score)

	return risk
}

func classifyScore(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskCritical
	case score >= 50:
		return RiskHigh
	case score >= 30:
		return RiskMedium
	default:
		return RiskLow
	}
}
