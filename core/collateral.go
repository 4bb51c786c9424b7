package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Collateral per-user deposited balance of one registered asset
type Collateral struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:collateral_idx" json:"user_id"`
	AssetID   string          `sql:"size:36;unique_index:collateral_idx" json:"asset_id"`
	Amount    decimal.Decimal `sql:"type:decimal(32,16)" json:"amount"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ICollateralStore collateral store interface
type ICollateralStore interface {
	Save(ctx context.Context, tx *db.DB, collateral *Collateral) error
	// Find returns a zero-value balance when no row exists yet
	Find(ctx context.Context, userID, assetID string) (*Collateral, error)
	FindByUser(ctx context.Context, userID string) ([]*Collateral, error)
	Update(ctx context.Context, tx *db.DB, collateral *Collateral) error
	SumOfCollaterals(ctx context.Context, assetID string) (decimal.Decimal, error)
}

// ICollateralManager deposit and redemption over the ledger
type ICollateralManager interface {
	// Deposit increments the balance, emits a deposit event, then pulls the
	// asset in through custody; any failure rolls the whole tx back
	Deposit(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal) error
	// Redeem decrements fromUserID's balance, emits a redemption event,
	// transfers the asset out to toUserID, then requires fromUserID to stay
	// above the minimum health factor. debt is fromUserID's effective debt
	// for that check; the caller supplies it so a burn earlier in the same
	// tx is taken into account.
	Redeem(ctx context.Context, tx *db.DB, fromUserID, toUserID, assetID string, amount, debt decimal.Decimal) error
	// Seize reassigns deposited collateral from the debtor to the liquidator
	// inside the ledger. No custody movement and no health requirement on the
	// debtor: liquidation enforces strict improvement instead.
	Seize(ctx context.Context, tx *db.DB, fromUserID, toUserID, assetID string, amount decimal.Decimal) error
}

// IDebtManager minting and burning of the synthetic unit against the ledger
type IDebtManager interface {
	// Mint increments the vault debt, requires the vault to stay above the
	// minimum health factor, then asks the issuance authority to mint.
	// collateralValue is the vault's collateral value in USD; the caller
	// supplies it so a deposit earlier in the same tx is taken into account.
	Mint(ctx context.Context, tx *db.DB, userID string, amount, collateralValue decimal.Decimal) error
	// Burn decrements onBehalfOfID's debt and pulls the synthetic asset from
	// payerID for burning. The payer split exists for liquidation.
	Burn(ctx context.Context, tx *db.DB, payerID, onBehalfOfID string, amount decimal.Decimal) error
}

// ILiquidationService repay-and-seize against an unhealthy vault
type ILiquidationService interface {
	Liquidate(ctx context.Context, tx *db.DB, liquidatorID, debtorID, assetID string, debtToCover decimal.Decimal) error
}
