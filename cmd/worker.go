package cmd

import (
	"anchor/worker"
	"anchor/worker/liquidationwatch"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "anchor job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		registry := provideRegistry()
		vaultStore := provideVaultStore(database)
		collateralStore := provideCollateralStore(database)
		priceService := providePriceService(registry)
		vaultService := provideVaultService(registry, vaultStore, collateralStore, priceService)

		jobs := []worker.IJob{
			liquidationwatch.New(provideConfig(), providePropertyStore(database), vaultStore, vaultService),
		}

		for _, job := range jobs {
			if err := job.Start(); err != nil {
				logrus.WithError(err).Fatal("start job")
			}
		}

		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			for _, job := range jobs {
				job.Stop()
			}

			close(done)
		})

		logrus.Infoln("worker started")
		<-done
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
