package collateral

import (
	"context"

	"anchor/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type collateralStore struct {
	db *db.DB
}

// New new collateral store
func New(db *db.DB) core.ICollateralStore {
	return &collateralStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Collateral{})
		if err := tx.AutoMigrate(core.Collateral{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *collateralStore) Save(ctx context.Context, tx *db.DB, collateral *core.Collateral) error {
	if e := tx.Update().Where("user_id=? and asset_id=?", collateral.UserID, collateral.AssetID).FirstOrCreate(collateral).Error; e != nil {
		return e
	}

	return nil
}

func (s *collateralStore) Find(ctx context.Context, userID, assetID string) (*core.Collateral, error) {
	var collateral core.Collateral
	if e := s.db.View().Where("user_id=? and asset_id=?", userID, assetID).First(&collateral).Error; e != nil {
		if gorm.IsRecordNotFoundError(e) {
			return &core.Collateral{UserID: userID, AssetID: assetID, Amount: decimal.Zero}, nil
		}
		return nil, e
	}

	return &collateral, nil
}

func (s *collateralStore) FindByUser(ctx context.Context, userID string) ([]*core.Collateral, error) {
	var collaterals []*core.Collateral
	if e := s.db.View().Where("user_id=?", userID).Find(&collaterals).Error; e != nil {
		return nil, e
	}

	return collaterals, nil
}

func (s *collateralStore) Update(ctx context.Context, tx *db.DB, collateral *core.Collateral) error {
	version := collateral.Version
	collateral.Version++
	update := tx.Update().Model(core.Collateral{}).Where("user_id=? and asset_id=? and version=?", collateral.UserID, collateral.AssetID, version).Updates(collateral)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *collateralStore) SumOfCollaterals(ctx context.Context, assetID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if e := s.db.View().Model(core.Collateral{}).Select("coalesce(sum(amount), 0)").Where("asset_id=?", assetID).Row().Scan(&sum); e != nil {
		return decimal.Zero, e
	}

	return sum, nil
}
