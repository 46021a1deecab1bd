package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AlertKind identifies the condition an alert was derived from.
type AlertKind string

const (
	AlertKindConcentration AlertKind = "concentracao"
	AlertKindLiquidity     AlertKind = "liquidez"
)

// ManagedAlertKinds are the kinds the generator owns. Regeneration retracts
// all of them for the family before upserting the fresh set.
var ManagedAlertKinds = []AlertKind{AlertKindConcentration, AlertKindLiquidity}

// AlertSeverity grades an alert for display.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityDanger  AlertSeverity = "danger"
	SeveritySuccess AlertSeverity = "success"
)

// Alert is a threshold-derived warning for a family, optionally scoped to one
// asset. Its identity is not stable across regenerations; only its presence
// for a given condition is.
type Alert struct {
	ID        string        `json:"id"`
	FamilyID  uint          `json:"family_id"`
	AssetID   *uint         `json:"asset_id,omitempty"`
	Kind      AlertKind     `json:"kind"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	CreatedAt time.Time     `json:"created_at"`
}

// AlertDelta is the two-phase output of a regeneration: the caller retracts
// every existing alert of the listed kinds for the family, then upserts the
// fresh set, inside one transaction. Repeating the call on an unchanged
// snapshot therefore yields the same alert set, never duplicates.
type AlertDelta struct {
	ToUpsert  []Alert
	ToRetract []AlertKind
}

// Alert thresholds, expressed as shares of total portfolio value.
const (
	concentrationShareLimit = 0.30
	illiquidShareLimit      = 0.50
)

// GenerateAlerts derives the concentration and liquidity alerts for a family
// from its current holdings.
func GenerateAlerts(familyID uint, holdings []Holding, now time.Time) AlertDelta {
	delta := AlertDelta{
		ToRetract: append([]AlertKind(nil), ManagedAlertKinds...),
	}

	var totalValue, illiquidValue float64
	for _, h := range holdings {
		totalValue += h.Position.CurrentValue
		if h.Asset.Details.Liquidez == LiquidezBaixa {
			illiquidValue += h.Position.CurrentValue
		}
	}

	if len(holdings) > 1 && totalValue > 0 {
		for _, h := range holdings {
			share := h.Position.CurrentValue / totalValue
			if share <= concentrationShareLimit {
				continue
			}
			assetID := h.Asset.ID
			delta.ToUpsert = append(delta.ToUpsert, Alert{
				ID:       uuid.NewString(),
				FamilyID: familyID,
				AssetID:  &assetID,
				Kind:     AlertKindConcentration,
				Message: fmt.Sprintf("Ativo %s representa %.1f%% da carteira (limite: 30%%)",
					h.Asset.Name, share*100),
				Severity:  SeverityWarning,
				CreatedAt: now,
			})
		}
	}

	if totalValue > 0 && illiquidValue/totalValue > illiquidShareLimit {
		delta.ToUpsert = append(delta.ToUpsert, Alert{
			ID:       uuid.NewString(),
			FamilyID: familyID,
			Kind:     AlertKindLiquidity,
			Message: fmt.Sprintf("%.1f%% do patrimônio está em ativos de baixa liquidez (limite: 50%%)",
				illiquidValue/totalValue*100),
			Severity:  SeverityDanger,
			CreatedAt: now,
		})
	}

	return delta
}
