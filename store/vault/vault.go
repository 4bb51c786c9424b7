package vault

import (
	"context"

	"anchor/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type vaultStore struct {
	db *db.DB
}

// New new vault store
func New(db *db.DB) core.IVaultStore {
	return &vaultStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Vault{})
		if err := tx.AutoMigrate(core.Vault{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *vaultStore) Save(ctx context.Context, tx *db.DB, vault *core.Vault) error {
	if e := tx.Update().Where("user_id=?", vault.UserID).FirstOrCreate(vault).Error; e != nil {
		return e
	}

	return nil
}

func (s *vaultStore) Find(ctx context.Context, userID string) (*core.Vault, error) {
	var vault core.Vault
	if e := s.db.View().Where("user_id=?", userID).First(&vault).Error; e != nil {
		if gorm.IsRecordNotFoundError(e) {
			return &core.Vault{UserID: userID, Debt: decimal.Zero}, nil
		}
		return nil, e
	}

	return &vault, nil
}

func (s *vaultStore) Update(ctx context.Context, tx *db.DB, vault *core.Vault) error {
	version := vault.Version
	vault.Version++
	update := tx.Update().Model(core.Vault{}).Where("user_id=? and version=?", vault.UserID, version).Updates(vault)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *vaultStore) All(ctx context.Context) ([]*core.Vault, error) {
	var vaults []*core.Vault
	if e := s.db.View().Find(&vaults).Error; e != nil {
		return nil, e
	}

	return vaults, nil
}

func (s *vaultStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	if e := s.db.View().Model(core.Vault{}).Select("distinct user_id").Pluck("user_id", &users).Error; e != nil {
		return nil, e
	}

	return users, nil
}

func (s *vaultStore) SumOfDebts(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if e := s.db.View().Model(core.Vault{}).Select("coalesce(sum(debt), 0)").Row().Scan(&sum); e != nil {
		return decimal.Zero, e
	}

	return sum, nil
}
