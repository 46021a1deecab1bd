package service

import (
	"context"
	"sort"
	"time"

	"golang-family-office/internal/engine"
	"golang-family-office/internal/entity"

	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the ordering guarantees of the real
// repositories so the services see ledgers in replay order.

type fakeTransactionRepo struct {
	txs    map[uint]*entity.Transaction
	nextID uint
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txs: make(map[uint]*entity.Transaction), nextID: 1}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	tx.ID = r.nextID
	r.nextID++
	stored := *tx
	r.txs[tx.ID] = &stored
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uint) (*entity.Transaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *tx
	return &found, nil
}

func (r *fakeTransactionRepo) FindByAssetID(_ context.Context, assetID uint) ([]entity.Transaction, error) {
	var txs []entity.Transaction
	for _, tx := range r.txs {
		if tx.AssetID == assetID {
			txs = append(txs, *tx)
		}
	}
	sortLedger(txs)
	return txs, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	if _, ok := r.txs[tx.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *tx
	r.txs[tx.ID] = &stored
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uint) error {
	delete(r.txs, id)
	return nil
}

func sortLedger(txs []entity.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].TransactionDate.Equal(txs[j].TransactionDate) {
			return txs[i].ID < txs[j].ID
		}
		return txs[i].TransactionDate.Before(txs[j].TransactionDate)
	})
}

type fakeAssetRepo struct {
	assets map[uint]*entity.Asset
	txRepo *fakeTransactionRepo
}

func newFakeAssetRepo(txRepo *fakeTransactionRepo) *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[uint]*entity.Asset), txRepo: txRepo}
}

func (r *fakeAssetRepo) Create(_ context.Context, asset *entity.Asset) error {
	if asset.ID == 0 {
		asset.ID = uint(len(r.assets) + 1)
	}
	stored := *asset
	r.assets[asset.ID] = &stored
	return nil
}

func (r *fakeAssetRepo) FindByID(ctx context.Context, id uint) (*entity.Asset, error) {
	asset, ok := r.assets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *asset
	txs, _ := r.txRepo.FindByAssetID(ctx, id)
	found.Transactions = txs
	return &found, nil
}

func (r *fakeAssetRepo) FindByFamilyID(ctx context.Context, familyID uint) ([]entity.Asset, error) {
	var assets []entity.Asset
	for _, asset := range r.assets {
		if asset.FamilyID == familyID {
			found, _ := r.FindByID(ctx, asset.ID)
			assets = append(assets, *found)
		}
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })
	return assets, nil
}

func (r *fakeAssetRepo) Update(_ context.Context, asset *entity.Asset) error {
	if _, ok := r.assets[asset.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *asset
	stored.Transactions = nil
	r.assets[asset.ID] = &stored
	return nil
}

func (r *fakeAssetRepo) Delete(_ context.Context, id uint) error {
	delete(r.assets, id)
	return nil
}

type fakeFamilyRepo struct {
	families  map[uint]*entity.Family
	assetRepo *fakeAssetRepo
}

func newFakeFamilyRepo(assetRepo *fakeAssetRepo) *fakeFamilyRepo {
	return &fakeFamilyRepo{families: make(map[uint]*entity.Family), assetRepo: assetRepo}
}

func (r *fakeFamilyRepo) Create(_ context.Context, family *entity.Family) error {
	if family.ID == 0 {
		family.ID = uint(len(r.families) + 1)
	}
	stored := *family
	r.families[family.ID] = &stored
	return nil
}

func (r *fakeFamilyRepo) FindByID(ctx context.Context, id uint) (*entity.Family, error) {
	family, ok := r.families[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *family
	if r.assetRepo != nil {
		assets, _ := r.assetRepo.FindByFamilyID(ctx, id)
		found.Assets = assets
	}
	return &found, nil
}

func (r *fakeFamilyRepo) FindAll(_ context.Context) ([]entity.Family, error) {
	var families []entity.Family
	for _, family := range r.families {
		families = append(families, *family)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].ID < families[j].ID })
	return families, nil
}

func (r *fakeFamilyRepo) UpdateCashBalance(_ context.Context, id uint, balance float64) error {
	family, ok := r.families[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	family.CashBalance = balance
	return nil
}

func (r *fakeFamilyRepo) Delete(_ context.Context, id uint) error {
	delete(r.families, id)
	return nil
}

type fakeAlertRepo struct {
	alerts map[string]*entity.Alert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[string]*entity.Alert)}
}

func (r *fakeAlertRepo) FindByFamilyID(_ context.Context, familyID uint) ([]entity.Alert, error) {
	var alerts []entity.Alert
	for _, alert := range r.alerts {
		if alert.FamilyID == familyID {
			alerts = append(alerts, *alert)
		}
	}
	return alerts, nil
}

func (r *fakeAlertRepo) FindRecentByFamilyID(ctx context.Context, familyID uint, limit int) ([]entity.Alert, error) {
	alerts, _ := r.FindByFamilyID(ctx, familyID)
	if len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

func (r *fakeAlertRepo) ReplaceForFamily(_ context.Context, familyID uint, kinds []string, alerts []entity.Alert) error {
	managed := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		managed[kind] = true
	}
	for id, alert := range r.alerts {
		if alert.FamilyID == familyID && managed[alert.Kind] {
			delete(r.alerts, id)
		}
	}
	for i := range alerts {
		stored := alerts[i]
		r.alerts[stored.ID] = &stored
	}
	return nil
}

func (r *fakeAlertRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, alert := range r.alerts {
		if alert.CreatedAt.Before(cutoff) {
			delete(r.alerts, id)
			deleted++
		}
	}
	return deleted, nil
}

// fakeValuation computes positions directly from the ledger, bypassing the
// Redis cache, and records invalidations.
type fakeValuation struct {
	invalidated []uint
}

func (v *fakeValuation) GetPosition(_ context.Context, asset *entity.Asset) (engine.Position, error) {
	return engine.ComputePosition(toEngineLedger(asset.Transactions), time.Now().Add(24*time.Hour), nil)
}

func (v *fakeValuation) GetHoldings(ctx context.Context, family *entity.Family) ([]engine.Holding, error) {
	holdings := make([]engine.Holding, 0, len(family.Assets))
	for i := range family.Assets {
		position, err := v.GetPosition(ctx, &family.Assets[i])
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, engine.Holding{
			Asset:    toEngineAsset(&family.Assets[i]),
			Position: position,
		})
	}
	return holdings, nil
}

func (v *fakeValuation) InvalidateAsset(_ context.Context, _, assetID uint) error {
	v.invalidated = append(v.invalidated, assetID)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) SendMessage(text string) error {
	n.messages = append(n.messages, text)
	return nil
}
