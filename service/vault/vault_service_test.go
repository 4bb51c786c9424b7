package vault

import (
	"context"
	"testing"

	"anchor/core"
	"anchor/internal/protocol"
	"anchor/internal/testutil"
	"anchor/pkg/number"
	"anchor/service/oracle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	btcAssetID = "c6d0c728-2624-429b-8e0d-d9d19b6592fa"
	ethAssetID = "43d61dcd-e413-450d-80b8-101d5e903357"
	userID     = "8017d200-7870-4b82-b53f-74bae1b54b89"
)

func newService(t *testing.T) (core.IVaultService, *testutil.VaultStore, *testutil.CollateralStore) {
	registry, err := core.NewAssetRegistry(
		[]*core.CollateralAsset{
			{AssetID: btcAssetID, Symbol: "BTC"},
			{AssetID: ethAssetID, Symbol: "ETH"},
		},
		[]string{"btc-usd", "eth-usd"},
	)
	require.Nil(t, err)

	feed := &testutil.Feed{Prices: map[string]decimal.Decimal{
		"btc-usd": number.Decimal("800").Shift(8),
		"eth-usd": number.Decimal("50").Shift(8),
	}}

	vaults := testutil.NewVaultStore()
	collaterals := testutil.NewCollateralStore()
	service := New(registry, vaults, collaterals, oracle.New(registry, feed))
	return service, vaults, collaterals
}

func TestAccountCollateralValue(t *testing.T) {
	service, _, collaterals := newService(t)
	ctx := context.Background()

	require.Nil(t, collaterals.Save(ctx, nil, &core.Collateral{UserID: userID, AssetID: btcAssetID, Amount: number.Decimal("2")}))
	require.Nil(t, collaterals.Save(ctx, nil, &core.Collateral{UserID: userID, AssetID: ethAssetID, Amount: number.Decimal("10")}))

	value, err := service.AccountCollateralValue(ctx, userID)
	require.Nil(t, err)
	assert.True(t, value.Equal(number.Decimal("2100")), "got %s", value)
}

func TestHealthFactorWithoutDebt(t *testing.T) {
	service, _, collaterals := newService(t)
	ctx := context.Background()

	require.Nil(t, collaterals.Save(ctx, nil, &core.Collateral{UserID: userID, AssetID: btcAssetID, Amount: number.Decimal("2")}))

	health, err := service.CalculateHealthFactor(ctx, userID)
	require.Nil(t, err)
	assert.True(t, health.Equal(protocol.MaxHealthFactor))
}

func TestAccountInformation(t *testing.T) {
	service, vaults, collaterals := newService(t)
	ctx := context.Background()

	require.Nil(t, collaterals.Save(ctx, nil, &core.Collateral{UserID: userID, AssetID: btcAssetID, Amount: number.Decimal("10")}))
	require.Nil(t, vaults.Save(ctx, nil, &core.Vault{UserID: userID, Debt: number.Decimal("5000")}))

	info, err := service.AccountInformation(ctx, userID)
	require.Nil(t, err)
	assert.True(t, info.CollateralValueUsd.Equal(number.Decimal("8000")))
	assert.True(t, info.Debt.Equal(number.Decimal("5000")))
	assert.True(t, info.HealthFactor.Equal(number.Decimal("0.8")), "got %s", info.HealthFactor)
}

func TestTokenAmountFromUsd(t *testing.T) {
	service, _, _ := newService(t)
	ctx := context.Background()

	amount, err := service.TokenAmountFromUsd(ctx, btcAssetID, number.Decimal("2000"))
	require.Nil(t, err)
	assert.True(t, amount.Equal(number.Decimal("2.5")), "got %s", amount)
}

func TestAccountInformationUnknownUser(t *testing.T) {
	service, _, _ := newService(t)

	info, err := service.AccountInformation(context.Background(), "2b9df368-6278-4a43-a46a-27d7691bb5bd")
	require.Nil(t, err)
	assert.True(t, info.Debt.IsZero())
	assert.True(t, info.CollateralValueUsd.IsZero())
	assert.True(t, info.HealthFactor.Equal(protocol.MaxHealthFactor))
}
