package debt

import (
	"context"

	"anchor/core"
	"anchor/internal/protocol"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type debtService struct {
	vaultStore    core.IVaultStore
	issuerService core.IIssuerService
}

// New new debt manager
func New(vaultStore core.IVaultStore, issuerService core.IIssuerService) core.IDebtManager {
	return &debtService{
		vaultStore:    vaultStore,
		issuerService: issuerService,
	}
}

func (s *debtService) Mint(ctx context.Context, tx *db.DB, userID string, amount, collateralValue decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "debt")

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	vault, err := s.vaultStore.Find(ctx, userID)
	if err != nil {
		return err
	}

	debt := vault.Debt.Add(amount)
	if !protocol.IsHealthy(protocol.HealthFactor(collateralValue, debt)) {
		return core.ErrHealthFactorTooLow
	}

	vault.Debt = debt
	if err := s.save(ctx, tx, vault); err != nil {
		log.WithError(err).Errorln("save vault")
		return err
	}

	if err := s.issuerService.Mint(ctx, userID, amount); err != nil {
		log.WithError(err).Errorln("issuer mint")
		return core.ErrMintFailed
	}

	return nil
}

func (s *debtService) Burn(ctx context.Context, tx *db.DB, payerID, onBehalfOfID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "debt")

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	vault, err := s.vaultStore.Find(ctx, onBehalfOfID)
	if err != nil {
		return err
	}

	debt := vault.Debt.Sub(amount)
	if debt.IsNegative() {
		return core.ErrInsufficientDebt
	}

	vault.Debt = debt
	if err := s.save(ctx, tx, vault); err != nil {
		log.WithError(err).Errorln("save vault")
		return err
	}

	// pull the synthetic asset from the payer and retire it
	if err := s.issuerService.Burn(ctx, payerID, amount); err != nil {
		log.WithError(err).Errorln("issuer burn")
		return core.ErrTransferFailed
	}

	return nil
}

func (s *debtService) save(ctx context.Context, tx *db.DB, vault *core.Vault) error {
	if vault.ID == 0 {
		return s.vaultStore.Save(ctx, tx, vault)
	}

	return s.vaultStore.Update(ctx, tx, vault)
}
