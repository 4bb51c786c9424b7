package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/render"
	"anchor/handler/views"
	"anchor/internal/protocol"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

func assetsHandler(registry *core.AssetRegistry, priceService core.IPriceOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		assets := make([]views.Asset, 0, len(registry.All()))
		for _, asset := range registry.All() {
			view := views.Asset{
				AssetID:     asset.AssetID,
				Symbol:      asset.Symbol,
				PriceFeedID: asset.PriceFeedID,
			}

			// a stale or unreachable feed hides the price, not the asset
			if reading, err := priceService.UncheckedPrice(ctx, asset.AssetID); err == nil {
				view.PriceUsd = reading.Price
				view.PriceAt = &reading.AsOf
			} else {
				logger.FromContext(ctx).WithError(err).Warnln("read price of", asset.Symbol)
			}

			assets = append(assets, view)
		}

		render.JSON(w, assets)
	}
}

func statsHandler(registry *core.AssetRegistry, vaultStore core.IVaultStore, collateralStore core.ICollateralStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		totalDebt, err := vaultStore.SumOfDebts(ctx)
		if err != nil {
			render.Error(w, err)
			return
		}

		stats := views.Stats{TotalDebt: totalDebt, Collaterals: map[string]decimal.Decimal{}}
		for _, asset := range registry.All() {
			sum, err := collateralStore.SumOfCollaterals(ctx, asset.AssetID)
			if err != nil {
				render.Error(w, err)
				return
			}
			stats.Collaterals[asset.Symbol] = sum
		}

		render.JSON(w, stats)
	}
}

func constantsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{
			"liquidation_threshold": protocol.LiquidationThreshold,
			"liquidation_bonus":     protocol.LiquidationBonus,
			"min_health_factor":     protocol.MinHealthFactor,
			"max_precision":         protocol.MaxPrecision,
			"feed_precision":        protocol.FeedPrecision,
			"oracle_stale_timeout":  protocol.OracleStaleTimeout.String(),
		})
	}
}
