// Package testutil provides in-memory doubles of the ledger stores and the
// external collaborators for service tests.
package testutil

import (
	"context"
	"errors"
	"sort"
	"time"

	"anchor/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Snapshotter state that can be captured and restored, used to emulate tx
// rollback in tests
type Snapshotter interface {
	Snapshot() interface{}
	Restore(snapshot interface{})
}

// DB core.Transactor double: runs the unit of work against the memory
// stores and restores their state when it fails
type DB struct {
	Stores []Snapshotter
}

func (d *DB) Tx(fn func(tx *db.DB) error) error {
	snapshots := make([]interface{}, len(d.Stores))
	for i, s := range d.Stores {
		snapshots[i] = s.Snapshot()
	}

	if err := fn(nil); err != nil {
		for i, s := range d.Stores {
			s.Restore(snapshots[i])
		}
		return err
	}

	return nil
}

// VaultStore memory vault store
type VaultStore struct {
	rows   map[string]*core.Vault
	nextID uint64
}

func NewVaultStore() *VaultStore {
	return &VaultStore{rows: make(map[string]*core.Vault), nextID: 1}
}

func (s *VaultStore) Save(ctx context.Context, tx *db.DB, vault *core.Vault) error {
	if existing, ok := s.rows[vault.UserID]; ok {
		vault.ID = existing.ID
	} else {
		vault.ID = s.nextID
		s.nextID++
		vault.CreatedAt = time.Now()
	}
	clone := *vault
	s.rows[vault.UserID] = &clone
	return nil
}

func (s *VaultStore) Find(ctx context.Context, userID string) (*core.Vault, error) {
	if vault, ok := s.rows[userID]; ok {
		clone := *vault
		return &clone, nil
	}
	return &core.Vault{UserID: userID, Debt: decimal.Zero}, nil
}

func (s *VaultStore) Update(ctx context.Context, tx *db.DB, vault *core.Vault) error {
	existing, ok := s.rows[vault.UserID]
	if !ok || existing.Version != vault.Version {
		return db.ErrOptimisticLock
	}
	vault.Version++
	clone := *vault
	s.rows[vault.UserID] = &clone
	return nil
}

func (s *VaultStore) All(ctx context.Context) ([]*core.Vault, error) {
	vaults := make([]*core.Vault, 0, len(s.rows))
	for _, vault := range s.rows {
		clone := *vault
		vaults = append(vaults, &clone)
	}
	sort.Slice(vaults, func(i, j int) bool { return vaults[i].ID < vaults[j].ID })
	return vaults, nil
}

func (s *VaultStore) Users(ctx context.Context) ([]string, error) {
	vaults, _ := s.All(ctx)
	users := make([]string, 0, len(vaults))
	for _, vault := range vaults {
		users = append(users, vault.UserID)
	}
	return users, nil
}

func (s *VaultStore) SumOfDebts(ctx context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, vault := range s.rows {
		sum = sum.Add(vault.Debt)
	}
	return sum, nil
}

func (s *VaultStore) Snapshot() interface{} {
	rows := make(map[string]*core.Vault, len(s.rows))
	for k, v := range s.rows {
		clone := *v
		rows[k] = &clone
	}
	return rows
}

func (s *VaultStore) Restore(snapshot interface{}) {
	s.rows = snapshot.(map[string]*core.Vault)
}

type collateralKey struct {
	userID  string
	assetID string
}

// CollateralStore memory collateral store
type CollateralStore struct {
	rows   map[collateralKey]*core.Collateral
	nextID uint64
}

func NewCollateralStore() *CollateralStore {
	return &CollateralStore{rows: make(map[collateralKey]*core.Collateral), nextID: 1}
}

func (s *CollateralStore) Save(ctx context.Context, tx *db.DB, collateral *core.Collateral) error {
	key := collateralKey{collateral.UserID, collateral.AssetID}
	if existing, ok := s.rows[key]; ok {
		collateral.ID = existing.ID
	} else {
		collateral.ID = s.nextID
		s.nextID++
		collateral.CreatedAt = time.Now()
	}
	clone := *collateral
	s.rows[key] = &clone
	return nil
}

func (s *CollateralStore) Find(ctx context.Context, userID, assetID string) (*core.Collateral, error) {
	if collateral, ok := s.rows[collateralKey{userID, assetID}]; ok {
		clone := *collateral
		return &clone, nil
	}
	return &core.Collateral{UserID: userID, AssetID: assetID, Amount: decimal.Zero}, nil
}

func (s *CollateralStore) FindByUser(ctx context.Context, userID string) ([]*core.Collateral, error) {
	var collaterals []*core.Collateral
	for key, collateral := range s.rows {
		if key.userID == userID {
			clone := *collateral
			collaterals = append(collaterals, &clone)
		}
	}
	sort.Slice(collaterals, func(i, j int) bool { return collaterals[i].ID < collaterals[j].ID })
	return collaterals, nil
}

func (s *CollateralStore) Update(ctx context.Context, tx *db.DB, collateral *core.Collateral) error {
	key := collateralKey{collateral.UserID, collateral.AssetID}
	existing, ok := s.rows[key]
	if !ok || existing.Version != collateral.Version {
		return db.ErrOptimisticLock
	}
	collateral.Version++
	clone := *collateral
	s.rows[key] = &clone
	return nil
}

func (s *CollateralStore) SumOfCollaterals(ctx context.Context, assetID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for key, collateral := range s.rows {
		if key.assetID == assetID {
			sum = sum.Add(collateral.Amount)
		}
	}
	return sum, nil
}

func (s *CollateralStore) Snapshot() interface{} {
	rows := make(map[collateralKey]*core.Collateral, len(s.rows))
	for k, v := range s.rows {
		clone := *v
		rows[k] = &clone
	}
	return rows
}

func (s *CollateralStore) Restore(snapshot interface{}) {
	s.rows = snapshot.(map[collateralKey]*core.Collateral)
}

// EventStore memory event store
type EventStore struct {
	Events []*core.Event
}

func NewEventStore() *EventStore {
	return &EventStore{}
}

func (s *EventStore) Create(ctx context.Context, tx *db.DB, event *core.Event) error {
	clone := *event
	clone.ID = uint64(len(s.Events) + 1)
	clone.CreatedAt = time.Now()
	s.Events = append(s.Events, &clone)
	return nil
}

func (s *EventStore) List(ctx context.Context, fromID uint64, limit int) ([]*core.Event, error) {
	var events []*core.Event
	for _, event := range s.Events {
		if event.ID > fromID && len(events) < limit {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *EventStore) FindByUser(ctx context.Context, userID string, limit int) ([]*core.Event, error) {
	var events []*core.Event
	for _, event := range s.Events {
		if event.UserID == userID && len(events) < limit {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *EventStore) Snapshot() interface{} {
	return append([]*core.Event(nil), s.Events...)
}

func (s *EventStore) Restore(snapshot interface{}) {
	s.Events = snapshot.([]*core.Event)
}

// Custody custody double with failure injection
type Custody struct {
	FailTransferIn  bool
	FailTransferOut bool
	TransferIns     []string
	TransferOuts    []string
}

func (c *Custody) TransferIn(ctx context.Context, fromUserID, assetID string, amount decimal.Decimal) error {
	if c.FailTransferIn {
		return errors.New("custody transfer in failed")
	}
	c.TransferIns = append(c.TransferIns, fromUserID)
	return nil
}

func (c *Custody) TransferOut(ctx context.Context, toUserID, assetID string, amount decimal.Decimal) error {
	if c.FailTransferOut {
		return errors.New("custody transfer out failed")
	}
	c.TransferOuts = append(c.TransferOuts, toUserID)
	return nil
}

// Issuer issuance authority double with failure injection
type Issuer struct {
	FailMint bool
	FailBurn bool
	Minted   decimal.Decimal
	Burned   decimal.Decimal
}

func (i *Issuer) Mint(ctx context.Context, toUserID string, amount decimal.Decimal) error {
	if i.FailMint {
		return errors.New("issuer mint failed")
	}
	i.Minted = i.Minted.Add(amount)
	return nil
}

func (i *Issuer) Burn(ctx context.Context, fromUserID string, amount decimal.Decimal) error {
	if i.FailBurn {
		return errors.New("issuer burn failed")
	}
	i.Burned = i.Burned.Add(amount)
	return nil
}

// Feed price feed double; prices are feed-native integer scaled
type Feed struct {
	Prices map[string]decimal.Decimal
	AsOf   time.Time
}

func (f *Feed) LatestPrice(ctx context.Context, feedID string) (decimal.Decimal, time.Time, error) {
	price, ok := f.Prices[feedID]
	if !ok {
		return decimal.Zero, time.Time{}, errors.New("no such feed")
	}
	asOf := f.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return price, asOf, nil
}
