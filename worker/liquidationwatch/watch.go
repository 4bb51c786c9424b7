package liquidationwatch

import (
	"context"
	"time"

	"anchor/core"
	"anchor/internal/protocol"
	"anchor/worker"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	checkpointKey = "liquidationwatch_checkpoint"
	alertTTL      = 10 * time.Minute
)

// Worker scans vaults and flags the ones below the minimum health factor,
// the signal liquidators act on. It never mutates the ledger.
type Worker struct {
	worker.BaseJob
	Config        *core.Config
	PropertyStore property.Store
	VaultStore    core.IVaultStore
	VaultService  core.IVaultService

	alerted gcache.Cache
}

// New new liquidation watch worker
func New(cfg *core.Config, propertyStore property.Store, vaultStore core.IVaultStore, vaultService core.IVaultService) *Worker {
	job := Worker{
		Config:        cfg,
		PropertyStore: propertyStore,
		VaultStore:    vaultStore,
		VaultService:  vaultService,
		alerted:       gcache.New(2048).LRU().Build(),
	}

	l, _ := time.LoadLocation(job.Config.App.Location)
	job.Cron = cron.New(cron.WithLocation(l))
	job.Cron.AddFunc("@every 10s", job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidationwatch")

	users, err := w.VaultStore.Users(ctx)
	if err != nil {
		log.Errorln("fetch vault users:", err)
		return err
	}

	for _, userID := range users {
		info, err := w.VaultService.AccountInformation(ctx, userID)
		if err != nil {
			// a stale feed blocks the whole scan, surface it and retry next tick
			log.WithField("user", userID).Errorln("account information:", err)
			return err
		}

		if !info.Debt.IsPositive() || protocol.IsHealthy(info.HealthFactor) {
			continue
		}

		// one alert per vault per ttl window
		if _, err := w.alerted.Get(userID); err == nil {
			continue
		}
		w.alerted.SetWithExpire(userID, struct{}{}, alertTTL)

		log.WithFields(logrus.Fields{
			"user":          userID,
			"debt":          info.Debt,
			"value":         info.CollateralValueUsd,
			"health_factor": info.HealthFactor,
		}).Infoln("vault below minimum health factor")
	}

	if err := w.PropertyStore.Save(ctx, checkpointKey, time.Now().Unix()); err != nil {
		log.Errorln("save checkpoint:", err)
	}

	return nil
}
