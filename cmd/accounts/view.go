package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/subcommands"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/present"
)

type listCmd struct {
	*app
	hide bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list every account" }
func (*listCmd) Usage() string {
	return `accounts list [-hide]

  Prints one line per account with its masked number and balance.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.hide, "hide", false, "hide balances")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := c.loadStore(ctx)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	if err := c.formatter(c.hide).WriteList(c.out, store.Accounts()); err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	*app
	hide  bool
	plain bool
	width int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show total balance and account counts" }
func (*summaryCmd) Usage() string {
	return `accounts summary [-hide] [-plain] [-width <columns>]

  Renders the total balance of active non-credit accounts, the account
  counts per kind and a table of every account.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.hide, "hide", false, "hide balances")
	f.BoolVar(&c.plain, "plain", false, "print the raw markdown")
	f.IntVar(&c.width, "width", 100, "word wrap width")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := c.loadStore(ctx)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}

	markdown := c.formatter(c.hide).SummaryMarkdown(store.Accounts())
	if c.plain {
		fmt.Fprint(c.out, markdown)
		return subcommands.ExitSuccess
	}

	rendered, err := present.RenderMarkdown(markdown, c.width)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(c.out, rendered)
	return subcommands.ExitSuccess
}

type showCmd struct {
	*app
	id   int64
	raw  bool
	hide bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one account" }
func (*showCmd) Usage() string {
	return `accounts show -id <id> [-raw] [-hide]

  Prints the fields of one account. -raw dumps the decoded record.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "account id")
	f.BoolVar(&c.raw, "raw", false, "dump the decoded record")
	f.BoolVar(&c.hide, "hide", false, "hide the balance")
}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.raw {
		spew.Fdump(c.out, acc)
		return subcommands.ExitSuccess
	}

	f := c.formatter(c.hide)
	fmt.Fprintf(c.out, "%s (%s)\n", acc.Name, acc.Kind.Label())
	fmt.Fprintf(c.out, "  institution: %s\n", acc.InstitutionName)
	fmt.Fprintf(c.out, "  number:      %s\n", bankaccount.MaskAccountNumber(acc.AccountNumber))
	fmt.Fprintf(c.out, "  balance:     %s\n", f.Amount(acc.Balance.Decimal))
	fmt.Fprintf(c.out, "  color:       %s\n", acc.Color)
	fmt.Fprintf(c.out, "  active:      %t\n", acc.IsActive)
	return subcommands.ExitSuccess
}
