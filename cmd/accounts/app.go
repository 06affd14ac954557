package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-manager/internal/accountstore"
	"github.com/carson-networks/account-manager/internal/apiclient"
	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/present"
)

// app is the state shared by every command.
type app struct {
	apiURL   string
	currency string
	logger   *logrus.Logger
	out      io.Writer
	errOut   io.Writer
}

func (a *app) notify(n accountstore.Notification) {
	fmt.Fprintf(a.errOut, "%s: %s\n", n.Title, n.Description)
}

func (a *app) newStore() *accountstore.Store {
	client := apiclient.New(a.apiURL, apiclient.WithLogger(a.logger))
	return accountstore.New(client,
		accountstore.WithLogger(a.logger),
		accountstore.WithNotifier(accountstore.NotifierFunc(a.notify)),
	)
}

// loadStore builds a store and loads the account list.
func (a *app) loadStore(ctx context.Context) (*accountstore.Store, error) {
	store := a.newStore()
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) formatter(hidden bool) present.Formatter {
	return present.NewFormatter(a.currency, hidden)
}

func findAccount(store *accountstore.Store, id int64) (bankaccount.Account, error) {
	for _, acc := range store.Accounts() {
		if acc.ID == id {
			return acc, nil
		}
	}
	return bankaccount.Account{}, fmt.Errorf("no account with id %d", id)
}
