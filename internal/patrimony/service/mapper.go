package service

import (
	"encoding/json"
	"time"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/dto"
)

// toEngineAsset converts a stored asset into the engine's view of it. Details
// that fail to parse are treated as absent rather than failing the valuation.
func toEngineAsset(asset *entity.Asset) engine.Asset {
	var details engine.AssetDetails
	if len(asset.Details) > 0 {
		_ = json.Unmarshal(asset.Details, &details)
	}
	return engine.Asset{
		ID:      asset.ID,
		Name:    asset.Name,
		Type:    asset.AssetType,
		Details: details,
	}
}

func toEngineLedger(txs []entity.Transaction) []engine.TransactionRecord {
	records := make([]engine.TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, engine.TransactionRecord{
			ID:         tx.ID,
			AssetID:    tx.AssetID,
			Kind:       engine.TransactionKind(tx.TransactionType),
			Quantity:   tx.Quantity,
			UnitPrice:  tx.UnitPrice,
			TotalValue: tx.TotalValue,
			Date:       tx.TransactionDate,
			CreatedAt:  tx.CreatedAt,
		})
	}
	return records
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:              tx.ID,
		AssetID:         tx.AssetID,
		TransactionType: tx.TransactionType,
		Quantity:        tx.Quantity,
		UnitPrice:       tx.UnitPrice,
		TotalValue:      tx.TotalValue,
		TransactionDate: tx.TransactionDate,
		Description:     tx.Description,
		CreatedAt:       tx.CreatedAt,
	}
}

func toAlertResponse(alert *entity.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:        alert.ID,
		FamilyID:  alert.FamilyID,
		AssetID:   alert.AssetID,
		Kind:      alert.Kind,
		Message:   alert.Message,
		Severity:  alert.Severity,
		CreatedAt: alert.CreatedAt,
	}
}

func parseTransactionDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
