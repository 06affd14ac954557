package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/carson-networks/account-manager/internal/accountform"
	"github.com/carson-networks/account-manager/internal/accountstore"
	"github.com/carson-networks/account-manager/internal/bankaccount"
)

// fieldFlags are the account fields settable from the command line.
type fieldFlags struct {
	name     string
	bank     string
	number   string
	balance  string
	kind     string
	color    string
	inactive bool
}

func (ff *fieldFlags) register(f *flag.FlagSet) {
	kinds := make([]string, len(bankaccount.Kinds))
	for i, k := range bankaccount.Kinds {
		kinds[i] = string(k)
	}
	f.StringVar(&ff.name, "name", "", "display name")
	f.StringVar(&ff.bank, "bank", "", "bank or e-wallet provider")
	f.StringVar(&ff.number, "number", "", "account or wallet number")
	f.StringVar(&ff.balance, "balance", "", "current balance")
	f.StringVar(&ff.kind, "type", "", "account type: "+strings.Join(kinds, ", "))
	f.StringVar(&ff.color, "color", "", "display color")
	f.BoolVar(&ff.inactive, "inactive", false, "exclude the account from totals")
}

// apply copies the flags that were set on the command line into the form.
// The type goes first since it decides which providers are offered.
func (ff *fieldFlags) apply(f *flag.FlagSet, form *accountform.Controller) error {
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["type"] {
		if err := form.SetKind(bankaccount.Kind(ff.kind)); err != nil {
			return err
		}
	}
	if set["bank"] {
		if err := form.SetInstitutionName(ff.bank); err != nil {
			return fmt.Errorf("%w (offered: %s)", err, strings.Join(form.Providers(), ", "))
		}
	}
	if set["name"] {
		form.SetName(ff.name)
	}
	if set["number"] {
		form.SetAccountNumber(ff.number)
	}
	if set["balance"] {
		form.SetBalanceText(ff.balance)
	}
	if set["color"] {
		form.SetColor(ff.color)
	}
	if set["inactive"] {
		form.SetActive(!ff.inactive)
	}
	return nil
}

type addCmd struct {
	*app
	fields fieldFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an account" }
func (*addCmd) Usage() string {
	return `accounts add -name <name> -bank <provider> -number <number> [-type <type>] [-balance <amount>] [-color <hex>] [-inactive]

  Creates an account. The type defaults to checking.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.fields.register(f) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form := accountform.New()
	if err := c.fields.apply(f, form); err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitUsageError
	}
	return c.submit(ctx, c.newStore(), form)
}

type editCmd struct {
	*app
	id     int64
	fields fieldFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of an account" }
func (*editCmd) Usage() string {
	return `accounts edit -id <id> [-name ...] [-bank ...] [-number ...] [-type ...] [-balance ...] [-color ...] [-inactive=<bool>]

  Replaces the account with its current fields overlaid by the given flags.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "account id")
	c.fields.register(f)
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(c.errOut, "-id is required")
		return subcommands.ExitUsageError
	}
	store, err := c.loadStore(ctx)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	acc, err := findAccount(store, c.id)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}

	form := accountform.Edit(acc)
	if err := c.fields.apply(f, form); err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitUsageError
	}
	return c.submit(ctx, store, form)
}

// submit validates the form and hands the result to the store. The store
// reports failures through its notifier.
func (a *app) submit(ctx context.Context, store *accountstore.Store, form *accountform.Controller) subcommands.ExitStatus {
	sub, err := form.Submit()
	if err != nil {
		fmt.Fprintln(a.errOut, err)
		return subcommands.ExitUsageError
	}
	if err := sub.Apply(ctx, store); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type toggleCmd struct {
	*app
	id int64
}

func (*toggleCmd) Name() string     { return "toggle" }
func (*toggleCmd) Synopsis() string { return "flip whether an account is active" }
func (*toggleCmd) Usage() string {
	return `accounts toggle -id <id>
`
}

func (c *toggleCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "account id")
}

func (c *toggleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(c.errOut, "-id is required")
		return subcommands.ExitUsageError
	}
	store, err := c.loadStore(ctx)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	acc, err := findAccount(store, c.id)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	if err := store.ToggleActive(ctx, acc); err != nil {
		return subcommands.ExitFailure
	}
	state := "active"
	if acc.IsActive {
		state = "inactive"
	}
	fmt.Fprintf(c.out, "%s is now %s\n", acc.Name, state)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	*app
	id int64
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an account" }
func (*deleteCmd) Usage() string {
	return `accounts delete -id <id>
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "account id")
}

func (c *deleteCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(c.errOut, "-id is required")
		return subcommands.ExitUsageError
	}
	store := c.newStore()
	if err := store.Remove(ctx, c.id); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
