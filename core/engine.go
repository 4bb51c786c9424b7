package core

import (
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Transactor runs a unit of work as one all-or-nothing commit. *db.DB
// satisfies it.
type Transactor interface {
	Tx(fn func(tx *db.DB) error) error
}

// IEngine the public mutating surface of the ledger. The caller identity is
// explicit on every call. Each operation is serialized by the reentrancy
// guard and runs as a single db tx: checks, ledger effects, event, external
// interaction last.
type IEngine interface {
	DepositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	MintDebt(ctx context.Context, userID string, amount decimal.Decimal) error
	DepositCollateralAndMint(ctx context.Context, userID, assetID string, amount, mintAmount decimal.Decimal) error
	RedeemCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	BurnDebt(ctx context.Context, userID string, amount decimal.Decimal) error
	RedeemCollateralForDebt(ctx context.Context, userID, assetID string, amount, burnAmount decimal.Decimal) error
	Liquidate(ctx context.Context, liquidatorID, debtorID, assetID string, debtToCover decimal.Decimal) error
}
