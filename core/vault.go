package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Vault per-user minted debt record. Created implicitly on first deposit or
// mint and never deleted; a vault with zero debt and zero collateral is a
// dormant record.
type Vault struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:vault_user_idx" json:"user_id"`
	Debt      decimal.Decimal `sql:"type:decimal(32,16)" json:"debt"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IVaultStore vault store interface
type IVaultStore interface {
	Save(ctx context.Context, tx *db.DB, vault *Vault) error
	// Find returns a zero-value vault when none exists yet
	Find(ctx context.Context, userID string) (*Vault, error)
	Update(ctx context.Context, tx *db.DB, vault *Vault) error
	All(ctx context.Context) ([]*Vault, error)
	Users(ctx context.Context) ([]string, error)
	SumOfDebts(ctx context.Context) (decimal.Decimal, error)
}

// AccountInfo vault summary for queries
type AccountInfo struct {
	UserID             string          `json:"user_id"`
	Debt               decimal.Decimal `json:"debt"`
	CollateralValueUsd decimal.Decimal `json:"collateral_value_usd"`
	HealthFactor       decimal.Decimal `json:"health_factor"`
}

// IVaultService solvency queries over the ledger, read only
type IVaultService interface {
	// CalculateHealthFactor recomputes the vault's health factor from fresh
	// ledger state and oracle prices; never cached
	CalculateHealthFactor(ctx context.Context, userID string) (decimal.Decimal, error)
	AccountCollateralValue(ctx context.Context, userID string) (decimal.Decimal, error)
	AccountInformation(ctx context.Context, userID string) (*AccountInfo, error)
	UsdValue(ctx context.Context, assetID string, amount decimal.Decimal) (decimal.Decimal, error)
	TokenAmountFromUsd(ctx context.Context, assetID string, usdValue decimal.Decimal) (decimal.Decimal, error)
}
