package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anchor/core"
	"anchor/internal/testutil"
	"anchor/pkg/number"
	"anchor/service/oracle"
	"anchor/service/vault"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	btcAssetID = "c6d0c728-2624-429b-8e0d-d9d19b6592fa"
	btcFeedID  = "btc-usd"
)

// idleEngine accepts every mutating call, the read routes never reach it
type idleEngine struct{}

func (idleEngine) DepositCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	return nil
}

func (idleEngine) MintDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	return nil
}

func (idleEngine) DepositCollateralAndMint(ctx context.Context, userID, assetID string, amount, mintAmount decimal.Decimal) error {
	return nil
}

func (idleEngine) RedeemCollateral(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	return nil
}

func (idleEngine) BurnDebt(ctx context.Context, userID string, amount decimal.Decimal) error {
	return nil
}

func (idleEngine) RedeemCollateralForDebt(ctx context.Context, userID, assetID string, amount, burnAmount decimal.Decimal) error {
	return nil
}

func (idleEngine) Liquidate(ctx context.Context, liquidatorID, debtorID, assetID string, debtToCover decimal.Decimal) error {
	return nil
}

func newTestHandler(t *testing.T) http.Handler {
	registry, err := core.NewAssetRegistry(
		[]*core.CollateralAsset{{AssetID: btcAssetID, Symbol: "BTC"}},
		[]string{btcFeedID},
	)
	require.Nil(t, err)

	vaults := testutil.NewVaultStore()
	collaterals := testutil.NewCollateralStore()
	events := testutil.NewEventStore()
	feed := &testutil.Feed{Prices: map[string]decimal.Decimal{
		btcFeedID: number.Decimal("800").Shift(8),
	}}

	priceService := oracle.New(registry, feed)
	vaultService := vault.New(registry, vaults, collaterals, priceService)

	return Handle(registry, vaults, collaterals, events, vaultService, priceService, idleEngine{})
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestConstantsHandler(t *testing.T) {
	w := get(t, newTestHandler(t), "/constants")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.EqualValues(t, 16, body["max_precision"])
	assert.EqualValues(t, 8, body["feed_precision"])
	assert.Equal(t, "1", body["min_health_factor"])
	assert.Equal(t, "0.5", body["liquidation_threshold"])
	assert.Equal(t, "0.1", body["liquidation_bonus"])
}

func TestAssetsHandler(t *testing.T) {
	w := get(t, newTestHandler(t), "/assets")
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)

	assert.Equal(t, btcAssetID, body[0]["asset_id"])
	assert.Equal(t, "BTC", body[0]["symbol"])
	assert.Equal(t, btcFeedID, body[0]["price_feed_id"])
	assert.Equal(t, "800", body[0]["price_usd"])
}
