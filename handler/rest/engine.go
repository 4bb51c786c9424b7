package rest

import (
	"net/http"

	"anchor/core"
	"anchor/handler/param"
	"anchor/handler/render"

	"github.com/shopspring/decimal"
)

func depositHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID     string          `json:"user_id"`
			AssetID    string          `json:"asset_id"`
			Amount     decimal.Decimal `json:"amount"`
			MintAmount decimal.Decimal `json:"mint_amount"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		var err error
		if params.MintAmount.IsPositive() {
			err = engine.DepositCollateralAndMint(ctx, params.UserID, params.AssetID, params.Amount, params.MintAmount)
		} else {
			err = engine.DepositCollateral(ctx, params.UserID, params.AssetID, params.Amount)
		}
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func mintHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID string          `json:"user_id"`
			Amount decimal.Decimal `json:"amount"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.MintDebt(ctx, params.UserID, params.Amount); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func redeemHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID     string          `json:"user_id"`
			AssetID    string          `json:"asset_id"`
			Amount     decimal.Decimal `json:"amount"`
			BurnAmount decimal.Decimal `json:"burn_amount"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		var err error
		if params.BurnAmount.IsPositive() {
			err = engine.RedeemCollateralForDebt(ctx, params.UserID, params.AssetID, params.Amount, params.BurnAmount)
		} else {
			err = engine.RedeemCollateral(ctx, params.UserID, params.AssetID, params.Amount)
		}
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func burnHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			UserID string          `json:"user_id"`
			Amount decimal.Decimal `json:"amount"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.BurnDebt(ctx, params.UserID, params.Amount); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}

func liquidationHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			LiquidatorID string          `json:"liquidator_id"`
			DebtorID     string          `json:"debtor_id"`
			AssetID      string          `json:"asset_id"`
			DebtToCover  decimal.Decimal `json:"debt_to_cover"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := engine.Liquidate(ctx, params.LiquidatorID, params.DebtorID, params.AssetID, params.DebtToCover); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}
