// Package engine computes positions, patrimony aggregates, risk scores and
// alerts for a family's portfolio. It is pure computation: all inputs are
// supplied by the caller and all outputs are plain values, so it is safe to
// invoke concurrently for different families.
package engine

import (
	"fmt"
	"time"
)

// Asset types known to the valuation and risk rules.
const (
	AssetTypeRendaFixa        = "renda_fixa"
	AssetTypeRendaVariavel    = "renda_variavel"
	AssetTypeFundoImobiliario = "fundo_imobiliario"
	AssetTypeCriptomoeda      = "criptomoeda"
	AssetTypeMoedaEstrangeira = "moeda_estrangeira"
)

// Liquidity grades carried in asset details.
const (
	LiquidezBaixa = "baixa"
	LiquidezMedia = "media"
	LiquidezAlta  = "alta"
)

// TransactionKind distinguishes buys from sells.
type TransactionKind string

const (
	TransactionBuy  TransactionKind = "buy"
	TransactionSell TransactionKind = "sell"
)

// TransactionRecord is one immutable fact in an asset's ledger.
type TransactionRecord struct {
	ID         uint
	AssetID    uint
	Kind       TransactionKind
	Quantity   float64
	UnitPrice  float64
	TotalValue float64
	Date       time.Time
	CreatedAt  time.Time
}

// AssetDetails carries the type-specific classification metadata used by the
// risk rules. Unknown keys in the stored JSON are ignored.
type AssetDetails struct {
	Ticker     string `json:"ticker,omitempty"`
	Indexador  string `json:"indexador,omitempty"`
	Vencimento string `json:"vencimento,omitempty"`
	Liquidez   string `json:"liquidez,omitempty"`
	Setor      string `json:"setor,omitempty"`
	Moeda      string `json:"moeda,omitempty"`
	Governanca *int   `json:"governanca,omitempty"`
}

// Asset is the engine's view of an asset: identity plus classification
// metadata. Holdings are never stored on it; they are derived from the ledger.
type Asset struct {
	ID      uint
	Name    string
	Type    string
	Details AssetDetails
}

// Position is the computed snapshot of an asset at a point in time.
type Position struct {
	Quantity           float64 `json:"quantity"`
	AverageCost        float64 `json:"average_cost"`
	CurrentValue       float64 `json:"current_value"`
	TotalInvested      float64 `json:"total_invested"`
	TotalDivested      float64 `json:"total_divested"`
	RealizedGainLoss   float64 `json:"realized_gain_loss"`
	UnrealizedGainLoss float64 `json:"unrealized_gain_loss"`
}

// Holding pairs an asset with its computed position.
type Holding struct {
	Asset    Asset
	Position Position
}

// IntegrityError reports a ledger that implies an impossible state, such as a
// negative quantity or a sell not covered by prior buys. Such ledgers must be
// rejected at transaction creation; the engine never repairs them silently.
type IntegrityError struct {
	AssetID uint
	Reason  string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("ledger integrity violation for asset %d: %s", e.AssetID, e.Reason)
}
