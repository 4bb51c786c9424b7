package liquidation

import (
	"context"

	"anchor/core"
	"anchor/internal/protocol"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type liquidationService struct {
	registry          *core.AssetRegistry
	vaultStore        core.IVaultStore
	vaultService      core.IVaultService
	collateralManager core.ICollateralManager
	debtManager       core.IDebtManager
}

// New new liquidation service
func New(
	registry *core.AssetRegistry,
	vaultStore core.IVaultStore,
	vaultService core.IVaultService,
	collateralManager core.ICollateralManager,
	debtManager core.IDebtManager,
) core.ILiquidationService {
	return &liquidationService{
		registry:          registry,
		vaultStore:        vaultStore,
		vaultService:      vaultService,
		collateralManager: collateralManager,
		debtManager:       debtManager,
	}
}

// Liquidate repays debtToCover of the debtor's debt from the liquidator and
// hands the liquidator the equivalent collateral plus the bonus. Partial
// closes are allowed as long as the position strictly improves. The
// liquidator's own health is not re-validated: the seizure only adds
// collateral to its balance and leaves its debt untouched, so its health
// factor cannot drop.
func (s *liquidationService) Liquidate(ctx context.Context, tx *db.DB, liquidatorID, debtorID, assetID string, debtToCover decimal.Decimal) error {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"service": "liquidation",
		"debtor":  debtorID,
	})

	if !debtToCover.IsPositive() {
		return core.ErrInvalidAmount
	}

	if _, ok := s.registry.Find(assetID); !ok {
		return core.ErrUnsupportedAsset
	}

	startValue, err := s.vaultService.AccountCollateralValue(ctx, debtorID)
	if err != nil {
		return err
	}

	vault, err := s.vaultStore.Find(ctx, debtorID)
	if err != nil {
		return err
	}

	startHealth := protocol.HealthFactor(startValue, vault.Debt)
	if protocol.IsHealthy(startHealth) {
		return core.ErrLiquidationNotEligible
	}

	if debtToCover.GreaterThan(vault.Debt) {
		return core.ErrInsufficientDebt
	}

	tokenAmount, err := s.vaultService.TokenAmountFromUsd(ctx, assetID, debtToCover)
	if err != nil {
		return err
	}

	seizeAmount := protocol.SeizeAmount(tokenAmount)

	if err := s.collateralManager.Seize(ctx, tx, debtorID, liquidatorID, assetID, seizeAmount); err != nil {
		return err
	}

	if err := s.debtManager.Burn(ctx, tx, liquidatorID, debtorID, debtToCover); err != nil {
		return err
	}

	// the tx is not yet visible to reads, so the post-liquidation position
	// is derived from the pre-state and the amounts moved above
	seizeValue, err := s.vaultService.UsdValue(ctx, assetID, seizeAmount)
	if err != nil {
		return err
	}

	endHealth := protocol.HealthFactor(startValue.Sub(seizeValue), vault.Debt.Sub(debtToCover))
	if !endHealth.GreaterThan(startHealth) {
		log.WithField("start", startHealth).WithField("end", endHealth).Infoln("liquidation rejected, no improvement")
		return core.ErrLiquidationNotImproved
	}

	log.WithField("seize", seizeAmount).WithField("cover", debtToCover).Infoln("liquidated")
	return nil
}
