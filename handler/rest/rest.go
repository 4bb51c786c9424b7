package rest

import (
	"errors"
	"net/http"

	"anchor/core"
	"anchor/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request. Mutating routes take the caller identity
// from the request, upstream auth is expected to have vetted it.
func Handle(
	registry *core.AssetRegistry,
	vaultStore core.IVaultStore,
	collateralStore core.ICollateralStore,
	eventStore core.IEventStore,
	vaultService core.IVaultService,
	priceService core.IPriceOracleService,
	engine core.IEngine,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/accounts/{user_id}", accountHandler(registry, collateralStore, vaultService, priceService))
	router.Get("/accounts/{user_id}/events", accountEventsHandler(eventStore))
	router.Get("/events", eventsHandler(eventStore))
	router.Get("/assets", assetsHandler(registry, priceService))
	router.Get("/stats", statsHandler(registry, vaultStore, collateralStore))
	router.Get("/constants", constantsHandler())

	router.Post("/deposits", depositHandler(engine))
	router.Post("/mints", mintHandler(engine))
	router.Post("/redeems", redeemHandler(engine))
	router.Post("/burns", burnHandler(engine))
	router.Post("/liquidations", liquidationHandler(engine))

	return router
}
