package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/account-manager/api"
	"github.com/carson-networks/account-manager/internal/config"
	"github.com/carson-networks/account-manager/internal/logging"
	"github.com/carson-networks/account-manager/internal/operator"
	"github.com/carson-networks/account-manager/internal/service"
	"github.com/carson-networks/account-manager/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLoggingWithLevel(envConfig.LogLevel)
	logger.Info("account-manager starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Database: dbStorage,
		}
		return httpRest.Serve(ctx)
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("account-manager stopped with error")
		return
	}
	logger.Info("account-manager stopped")
}
