package engine

import (
	"context"

	"anchor/core"
	"anchor/pkg/guard"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type engine struct {
	guard              *guard.Guard
	database           core.Transactor
	vaultStore         core.IVaultStore
	vaultService       core.IVaultService
	collateralManager  core.ICollateralManager
	debtManager        core.IDebtManager
	liquidationService core.ILiquidationService
}

// New new ledger engine. Operations are serialized by the guard and each
// runs as one db tx.
func New(
	database core.Transactor,
	vaultStore core.IVaultStore,
	vaultService core.IVaultService,
	collateralManager core.ICollateralManager,
	debtManager core.IDebtManager,
	liquidationService core.ILiquidationService,
) core.IEngine {
	return &engine{
		guard:              guard.New(),
		database:           database,
		vaultStore:         vaultStore,
		vaultService:       vaultService,
		collateralManager:  collateralManager,
		debtManager:        debtManager,
		liquidationService: liquidationService,
	}
}

func (e *engine) DepositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if !e.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer e.guard.Exit()

	return e.database.Tx(func(tx *db.DB) error {
		return e.collateralManager.Deposit(ctx, tx, userID, assetID, amount)
	})
}

func (e *engine) MintDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !e.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer e.guard.Exit()

	value, err := e.vaultService.AccountCollateralValue(ctx, userID)
	if err != nil {
		return err
	}

	return e.database.Tx(func(tx *db.DB) error {
		return e.debtManager.Mint(ctx, tx, userID, amount, value)
	})
}

// DepositCollateralAndMint deposits and mints atomically. The health check
// on the mint counts the collateral deposited in the same tx.
func (e *engine) DepositCollateralAndMint(ctx context.Context, userID, assetID string, amount, mintAmount decimal.Decimal) error {
	if !e.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer e.guard.Exit()

	value, err := e.vaultService.AccountCollateralValue(ctx, userID)
	if err != nil {
		return err
	}

	deposited, err := e.vaultService.UsdValue(ctx, assetID, amount)
	if err != nil {
		return err
	}

	return e.database.Tx(func(tx *db.DB) error {
		if err := e.collateralManager.Deposit(ctx, tx, userID, assetID, amount); err != nil {
			return err
		}

		return e.debtManager.Mint(ctx, tx, userID, mintAmount, value.Add(deposited))
	})
}

func (e *engine) RedeemCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	if !e.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer e.guard.Exit()

	vault, err := e.vaultStore.Find(ctx, userID)
	if err != nil {
		return err
	}

	return e.database.Tx(func(tx *db.DB) error {
		return e.collateralManager.Redeem(ctx, tx, userID, userID, assetID, amount, vault.Debt)
	})
}

func (e *engine) BurnDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	if !e.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer e.guard.Exit()

	return e.database.Tx(func(tx *db.DB) error {
		return e.debtManager.Burn(ctx, tx, userID, userID, amount)
	})
}

// RedeemCollateralForDebt burns and redeems atomically. The health check on
// the redemption counts the debt burned in the same tx.
func (e *engine) RedeemCollateralForDebt(ctx context.Context, userID, assetID string, amount, burnAmount decimal.Decimal) error {
	if !e.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer e.guard.Exit()

	vault, err := e.vaultStore.Find(ctx, userID)
	if err != nil {
		return err
	}

	return e.database.Tx(func(tx *db.DB) error {
		if err := e.debtManager.Burn(ctx, tx, userID, userID, burnAmount); err != nil {
			return err
		}

		return e.collateralManager.Redeem(ctx, tx, userID, userID, assetID, amount, vault.Debt.Sub(burnAmount))
	})
}

func (e *engine) Liquidate(ctx context.Context, liquidatorID, debtorID, assetID string, debtToCover decimal.Decimal) error {
	if !e.guard.Enter() {
		return core.ErrReentrantCall
	}
	defer e.guard.Exit()

	return e.database.Tx(func(tx *db.DB) error {
		return e.liquidationService.Liquidate(ctx, tx, liquidatorID, debtorID, assetID, debtToCover)
	})
}
