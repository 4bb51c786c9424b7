package collateral

import (
	"context"

	"anchor/core"
	"anchor/internal/protocol"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type collateralService struct {
	registry        *core.AssetRegistry
	collateralStore core.ICollateralStore
	vaultService    core.IVaultService
	notifier        core.INotifier
	custodyService  core.ICustodyService
}

// New new collateral manager
func New(
	registry *core.AssetRegistry,
	collateralStore core.ICollateralStore,
	vaultService core.IVaultService,
	notifier core.INotifier,
	custodyService core.ICustodyService,
) core.ICollateralManager {
	return &collateralService{
		registry:        registry,
		collateralStore: collateralStore,
		vaultService:    vaultService,
		notifier:        notifier,
		custodyService:  custodyService,
	}
}

func (s *collateralService) Deposit(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "collateral")

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if _, ok := s.registry.Find(assetID); !ok {
		return core.ErrUnsupportedAsset
	}

	collateral, err := s.collateralStore.Find(ctx, userID, assetID)
	if err != nil {
		return err
	}

	collateral.Amount = collateral.Amount.Add(amount)
	if err := s.save(ctx, tx, collateral); err != nil {
		log.WithError(err).Errorln("save collateral")
		return err
	}

	if err := s.notifier.DepositCreated(ctx, tx, userID, assetID, amount); err != nil {
		return err
	}

	// external interaction last; a custody failure unwinds the ledger write
	if err := s.custodyService.TransferIn(ctx, userID, assetID, amount); err != nil {
		log.WithError(err).Errorln("custody transfer in")
		return core.ErrTransferFailed
	}

	return nil
}

func (s *collateralService) Redeem(ctx context.Context, tx *db.DB, fromUserID, toUserID, assetID string, amount, debt decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "collateral")

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if _, ok := s.registry.Find(assetID); !ok {
		return core.ErrUnsupportedAsset
	}

	collateral, err := s.collateralStore.Find(ctx, fromUserID, assetID)
	if err != nil {
		return err
	}

	remain := collateral.Amount.Sub(amount)
	if remain.IsNegative() {
		return core.ErrInsufficientCollateral
	}

	if debt.IsPositive() {
		// valued before the ledger write: the post-redemption position is
		// the pre-state minus the redeemed amount
		value, err := s.vaultService.AccountCollateralValue(ctx, fromUserID)
		if err != nil {
			return err
		}

		redeemed, err := s.vaultService.UsdValue(ctx, assetID, amount)
		if err != nil {
			return err
		}

		if !protocol.IsHealthy(protocol.HealthFactor(value.Sub(redeemed), debt)) {
			return core.ErrHealthFactorTooLow
		}
	}

	collateral.Amount = remain
	if err := s.save(ctx, tx, collateral); err != nil {
		log.WithError(err).Errorln("save collateral")
		return err
	}

	if err := s.notifier.CollateralRedeemed(ctx, tx, fromUserID, toUserID, assetID, amount); err != nil {
		return err
	}

	if err := s.custodyService.TransferOut(ctx, toUserID, assetID, amount); err != nil {
		log.WithError(err).Errorln("custody transfer out")
		return core.ErrTransferFailed
	}

	return nil
}

func (s *collateralService) Seize(ctx context.Context, tx *db.DB, fromUserID, toUserID, assetID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	from, err := s.collateralStore.Find(ctx, fromUserID, assetID)
	if err != nil {
		return err
	}

	remain := from.Amount.Sub(amount)
	if remain.IsNegative() {
		return core.ErrInsufficientCollateral
	}

	from.Amount = remain
	if err := s.save(ctx, tx, from); err != nil {
		return err
	}

	to, err := s.collateralStore.Find(ctx, toUserID, assetID)
	if err != nil {
		return err
	}

	to.Amount = to.Amount.Add(amount)
	if err := s.save(ctx, tx, to); err != nil {
		return err
	}

	return s.notifier.CollateralRedeemed(ctx, tx, fromUserID, toUserID, assetID, amount)
}

func (s *collateralService) save(ctx context.Context, tx *db.DB, collateral *core.Collateral) error {
	if collateral.ID == 0 {
		return s.collateralStore.Save(ctx, tx, collateral)
	}

	return s.collateralStore.Update(ctx, tx, collateral)
}
