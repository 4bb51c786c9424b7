package cmd

import (
	"anchor/core"
	collateralservice "anchor/service/collateral"
	"anchor/service/custody"
	debtservice "anchor/service/debt"
	"anchor/service/engine"
	"anchor/service/issuer"
	"anchor/service/liquidation"
	"anchor/service/notifier"
	"anchor/service/oracle"
	vaultservice "anchor/service/vault"
	"anchor/store/collateral"
	"anchor/store/event"
	"anchor/store/vault"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideRegistry() *core.AssetRegistry {
	registry, err := core.NewAssetRegistry(cfg.Collaterals, cfg.PriceFeeds)
	if err != nil {
		panic(err)
	}

	return registry
}

// ---------------store-----------------------------------------

func provideVaultStore(db *db.DB) core.IVaultStore {
	return vault.New(db)
}

func provideCollateralStore(db *db.DB) core.ICollateralStore {
	return collateral.New(db)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return event.New(db)
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

// ------------------service------------------------------------

func providePriceService(registry *core.AssetRegistry) core.IPriceOracleService {
	return oracle.New(registry, oracle.NewFeed(cfg.Oracle.EndPoint))
}

func provideCustodyService() core.ICustodyService {
	return custody.New(cfg.Custody.EndPoint)
}

func provideIssuerService() core.IIssuerService {
	return issuer.New(cfg.Issuer.EndPoint)
}

func provideVaultService(
	registry *core.AssetRegistry,
	vaultStore core.IVaultStore,
	collateralStore core.ICollateralStore,
	priceService core.IPriceOracleService,
) core.IVaultService {
	return vaultservice.New(registry, vaultStore, collateralStore, priceService)
}

func provideEngine(database *db.DB, registry *core.AssetRegistry) core.IEngine {
	vaultStore := provideVaultStore(database)
	collateralStore := provideCollateralStore(database)
	eventStore := provideEventStore(database)

	priceService := providePriceService(registry)
	vaultService := provideVaultService(registry, vaultStore, collateralStore, priceService)
	eventNotifier := notifier.New(eventStore)
	collateralManager := collateralservice.New(registry, collateralStore, vaultService, eventNotifier, provideCustodyService())
	debtManager := debtservice.New(vaultStore, provideIssuerService())
	liquidationService := liquidation.New(registry, vaultStore, vaultService, collateralManager, debtManager)

	return engine.New(database, vaultStore, vaultService, collateralManager, debtManager, liquidationService)
}
