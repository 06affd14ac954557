package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/account-manager/internal/config"
	"github.com/carson-networks/account-manager/internal/logging"
	"github.com/carson-networks/account-manager/internal/storage"
)

func main() {
	source := flag.String("source", "file://migrations", "migration source URL")
	flag.Parse()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	log := logging.SetupLoggingWithLevel(env.LogLevel)

	store, err := storage.NewStorage(env)
	if err != nil {
		log.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	status, err := storage.Migrate(store.DB, *source)
	if err != nil {
		log.WithError(err).Fatal("storage.Migrate")
		return
	}

	log.WithFields(logrus.Fields{
		"preMigrationVersion":  status.PreVersion,
		"postMigrationVersion": status.PostVersion,
	}).Info("Migration status")
}
