package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-manager/internal/config"
	"github.com/carson-networks/account-manager/internal/logging"
)

func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLoggingWithLevel(env.LogLevel)
	logger.Out = os.Stderr

	a := &app{
		apiURL:   env.APIURL,
		currency: env.Currency,
		logger:   logger,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
	flag.StringVar(&a.apiURL, "api", a.apiURL, "base URL of the accounts API")
	flag.StringVar(&a.currency, "currency", a.currency, "ISO currency code used to format balances")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range commands(a) {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func commands(a *app) []subcommands.Command {
	return []subcommands.Command{
		&listCmd{app: a},
		&summaryCmd{app: a},
		&showCmd{app: a},
		&addCmd{app: a},
		&editCmd{app: a},
		&toggleCmd{app: a},
		&deleteCmd{app: a},
	}
}
