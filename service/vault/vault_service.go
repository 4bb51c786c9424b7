package vault

import (
	"context"

	"anchor/core"
	"anchor/internal/protocol"

	"github.com/shopspring/decimal"
)

type vaultService struct {
	registry        *core.AssetRegistry
	vaultStore      core.IVaultStore
	collateralStore core.ICollateralStore
	priceService    core.IPriceOracleService
}

// New new vault service
func New(
	registry *core.AssetRegistry,
	vaultStore core.IVaultStore,
	collateralStore core.ICollateralStore,
	priceService core.IPriceOracleService,
) core.IVaultService {
	return &vaultService{
		registry:        registry,
		vaultStore:      vaultStore,
		collateralStore: collateralStore,
		priceService:    priceService,
	}
}

func (s *vaultService) CalculateHealthFactor(ctx context.Context, userID string) (decimal.Decimal, error) {
	value, err := s.AccountCollateralValue(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	vault, err := s.vaultStore.Find(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return protocol.HealthFactor(value, vault.Debt), nil
}

// AccountCollateralValue sums deposited amounts times oracle prices in
// registry order, so the aggregation is deterministic
func (s *vaultService) AccountCollateralValue(ctx context.Context, userID string) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, asset := range s.registry.All() {
		collateral, err := s.collateralStore.Find(ctx, userID, asset.AssetID)
		if err != nil {
			return decimal.Zero, err
		}

		if !collateral.Amount.IsPositive() {
			continue
		}

		reading, err := s.priceService.Price(ctx, asset.AssetID)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(protocol.UsdValue(collateral.Amount, reading.Price))
	}

	return total, nil
}

func (s *vaultService) AccountInformation(ctx context.Context, userID string) (*core.AccountInfo, error) {
	value, err := s.AccountCollateralValue(ctx, userID)
	if err != nil {
		return nil, err
	}

	vault, err := s.vaultStore.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &core.AccountInfo{
		UserID:             userID,
		Debt:               vault.Debt,
		CollateralValueUsd: value,
		HealthFactor:       protocol.HealthFactor(value, vault.Debt),
	}, nil
}

func (s *vaultService) UsdValue(ctx context.Context, assetID string, amount decimal.Decimal) (decimal.Decimal, error) {
	reading, err := s.priceService.Price(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	return protocol.UsdValue(amount, reading.Price), nil
}

func (s *vaultService) TokenAmountFromUsd(ctx context.Context, assetID string, usdValue decimal.Decimal) (decimal.Decimal, error) {
	reading, err := s.priceService.Price(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	return protocol.TokenAmount(usdValue, reading.Price), nil
}
