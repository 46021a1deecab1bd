package service

import (
	"context"
	"errors"
	"fmt"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"
	"golang-family-office/internal/patrimony/dto"
	"golang-family-office/internal/patrimony/repository"
	"golang-family-office/pkg/logger"
	"golang-family-office/pkg/utils"
)

var (
	// ErrInvalidTransaction is returned when a request fails field
	// validation before touching the ledger.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrUncoveredSell is returned when a sell would exceed the quantity
	// held at any point of the ledger replay.
	ErrUncoveredSell = errors.New("sell exceeds held quantity")
)

// TransactionService appends to and corrects the transaction ledger. Every
// mutation is validated by replaying the resulting ledger; a mutation that
// would leave the ledger inconsistent is rejected.
type TransactionService interface {
	CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	GetTransaction(ctx context.Context, id uint) (*dto.TransactionResponse, error)
	GetTransactionsByAsset(ctx context.Context, assetID uint) (*dto.TransactionSummaryResponse, error)
	UpdateTransaction(ctx context.Context, id uint, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id uint) error
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	log *logger.Logger,
	txRepo repository.TransactionRepository,
	assetRepo repository.AssetRepository,
	valuation ValuationService,
) TransactionService {
	return &transactionService{
		log:       log,
		txRepo:    txRepo,
		assetRepo: assetRepo,
		valuation: valuation,
	}
}

type transactionService struct {
	log       *logger.Logger
	txRepo    repository.TransactionRepository
	assetRepo repository.AssetRepository
	valuation ValuationService
}

func (s *transactionService) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := validateTransactionFields(req.TransactionType, req.Quantity, req.UnitPrice); err != nil {
		return nil, err
	}
	date, err := parseTransactionDate(req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad transaction_date: %v", ErrInvalidTransaction, err)
	}

	asset, err := s.assetRepo.FindByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		AssetID:         req.AssetID,
		TransactionType: req.TransactionType,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		TotalValue:      engine.Round2(req.Quantity * req.UnitPrice),
		TransactionDate: date,
		Description:     req.Description,
	}

	candidate := append(toEngineLedger(asset.Transactions), toCandidateRecord(tx, nextLedgerID(asset.Transactions)))
	if err := validateLedger(candidate); err != nil {
		return nil, err
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.invalidate(ctx, asset.FamilyID, asset.ID)

	s.log.DebugContext(ctx, "Recorded transaction",
		logger.IntField("asset_id", int(asset.ID)),
		logger.StringField("type", tx.TransactionType),
		logger.Float64Field("total_value", tx.TotalValue))

	return toTransactionResponse(tx), nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id uint) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetTransactionsByAsset returns the asset's full ledger together with the
// position it replays into.
func (s *transactionService) GetTransactionsByAsset(ctx context.Context, assetID uint) (*dto.TransactionSummaryResponse, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	position, err := s.valuation.GetPosition(ctx, asset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, 0, len(asset.Transactions))
	for i := range asset.Transactions {
		responses = append(responses, *toTransactionResponse(&asset.Transactions[i]))
	}

	return &dto.TransactionSummaryResponse{
		AssetID:      asset.ID,
		AssetName:    asset.Name,
		Position:     position,
		Transactions: responses,
	}, nil
}

// UpdateTransaction corrects a record in place. The whole ledger is replayed
// with the corrected record before anything is persisted.
func (s *transactionService) UpdateTransaction(ctx context.Context, id uint, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateTransactionFields(tx.TransactionType, req.Quantity, req.UnitPrice); err != nil {
		return nil, err
	}
	date, err := parseTransactionDate(req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad transaction_date: %v", ErrInvalidTransaction, err)
	}

	asset, err := s.assetRepo.FindByID(ctx, tx.AssetID)
	if err != nil {
		return nil, err
	}

	updated := *tx
	updated.Quantity = req.Quantity
	updated.UnitPrice = req.UnitPrice
	updated.TotalValue = engine.Round2(req.Quantity * req.UnitPrice)
	updated.TransactionDate = date
	updated.Description = req.Description

	candidate := make([]engine.TransactionRecord, 0, len(asset.Transactions))
	for i := range asset.Transactions {
		if asset.Transactions[i].ID == id {
			candidate = append(candidate, toCandidateRecord(&updated, id))
			continue
		}
		candidate = append(candidate, toEngineLedger(asset.Transactions[i : i+1])...)
	}
	if err := validateLedger(candidate); err != nil {
		return nil, err
	}

	if err := s.txRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	s.invalidate(ctx, asset.FamilyID, asset.ID)

	return toTransactionResponse(&updated), nil
}

// DeleteTransaction removes a record, refusing when the remaining ledger
// would no longer replay cleanly.
func (s *transactionService) DeleteTransaction(ctx context.Context, id uint) error {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	asset, err := s.assetRepo.FindByID(ctx, tx.AssetID)
	if err != nil {
		return err
	}

	remaining := make([]entity.Transaction, 0, len(asset.Transactions))
	for i := range asset.Transactions {
		if asset.Transactions[i].ID != id {
			remaining = append(remaining, asset.Transactions[i])
		}
	}
	if err := validateLedger(toEngineLedger(remaining)); err != nil {
		return err
	}

	if err := s.txRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, asset.FamilyID, asset.ID)
	return nil
}

func (s *transactionService) invalidate(ctx context.Context, familyID, assetID uint) {
	if err := s.valuation.InvalidateAsset(ctx, familyID, assetID); err != nil {
		s.log.WarnContext(ctx, "Failed to invalidate position cache", logger.ErrorField(err))
	}
}

func validateTransactionFields(txType string, quantity, unitPrice float64) error {
	if txType != string(engine.TransactionBuy) && txType != string(engine.TransactionSell) {
		return fmt.Errorf("%w: type must be buy or sell", ErrInvalidTransaction)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidTransaction)
	}
	if unitPrice <= 0 {
		return fmt.Errorf("%w: unit price must be greater than zero", ErrInvalidTransaction)
	}
	return nil
}

// validateLedger replays a candidate ledger and rejects it when the replay
// implies an uncovered sell or a negative quantity at any point.
func validateLedger(records []engine.TransactionRecord) error {
	asOf := utils.TimeNowBRT()
	for _, r := range records {
		if r.Date.After(asOf) {
			asOf = r.Date
		}
	}

	if _, err := engine.ComputePosition(records, asOf, nil); err != nil {
		var integrity *engine.IntegrityError
		if errors.As(err, &integrity) {
			return fmt.Errorf("%w: %s", ErrUncoveredSell, integrity.Reason)
		}
		return err
	}
	return nil
}

// toCandidateRecord views a pending entity row as an engine record. The id
// fixes the record's place among same-date entries during replay.
func toCandidateRecord(tx *entity.Transaction, id uint) engine.TransactionRecord {
	return engine.TransactionRecord{
		ID:         id,
		AssetID:    tx.AssetID,
		Kind:       engine.TransactionKind(tx.TransactionType),
		Quantity:   tx.Quantity,
		UnitPrice:  tx.UnitPrice,
		TotalValue: tx.TotalValue,
		Date:       tx.TransactionDate,
	}
}

func nextLedgerID(txs []entity.Transaction) uint {
	var max uint
	for _, tx := range txs {
		if tx.ID > max {
			max = tx.ID
		}
	}
	return max + 1
}
