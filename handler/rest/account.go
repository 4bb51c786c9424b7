package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/param"
	"anchor/handler/render"
	"anchor/handler/views"
	"anchor/internal/protocol"
)

func accountHandler(
	registry *core.AssetRegistry,
	collateralStore core.ICollateralStore,
	vaultService core.IVaultService,
	priceService core.IPriceOracleService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := param.String(r, "user_id")

		info, err := vaultService.AccountInformation(ctx, userID)
		if err != nil {
			render.Error(w, err)
			return
		}

		account := views.Account{AccountInfo: *info, Collaterals: []views.Collateral{}}
		for _, asset := range registry.All() {
			collateral, err := collateralStore.Find(ctx, userID, asset.AssetID)
			if err != nil {
				render.Error(w, err)
				return
			}

			if !collateral.Amount.IsPositive() {
				continue
			}

			reading, err := priceService.Price(ctx, asset.AssetID)
			if err != nil {
				render.Error(w, err)
				return
			}

			account.Collaterals = append(account.Collaterals, views.Collateral{
				AssetID:  asset.AssetID,
				Symbol:   asset.Symbol,
				Amount:   collateral.Amount,
				PriceUsd: reading.Price,
				ValueUsd: protocol.UsdValue(collateral.Amount, reading.Price),
			})
		}

		render.JSON(w, account)
	}
}

func accountEventsHandler(eventStore core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := param.String(r, "user_id")

		limit := param.Int(r, "limit")
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		events, err := eventStore.FindByUser(ctx, userID, limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, events)
	}
}

func eventsHandler(eventStore core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			From  uint64 `json:"from"`
			Limit int    `json:"limit"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.Limit <= 0 || params.Limit > 500 {
			params.Limit = 100
		}

		events, err := eventStore.List(ctx, params.From, params.Limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, events)
	}
}
