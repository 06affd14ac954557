package present

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/carson-networks/account-manager/internal/bankaccount"
)

func status(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// WriteList prints one aligned row per account.
func (f Formatter) WriteList(w io.Writer, accounts []bankaccount.Account) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tINSTITUTION\tNUMBER\tBALANCE\tSTATUS")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			acc.ID,
			acc.Name,
			acc.Kind.Label(),
			acc.InstitutionName,
			bankaccount.MaskAccountNumber(acc.AccountNumber),
			f.Amount(acc.Balance.Decimal),
			status(acc.IsActive),
		)
	}
	return tw.Flush()
}

// SummaryMarkdown builds the summary report: the aggregate figures followed
// by a table of accounts.
func (f Formatter) SummaryMarkdown(accounts []bankaccount.Account) string {
	agg := bankaccount.Summarize(accounts)

	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	b.WriteString("| Total balance | Active | Bank accounts | E-wallets | Credit cards |\n")
	b.WriteString("|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %s | %d of %d | %d | %d | %d |\n\n",
		f.Amount(agg.TotalBalance),
		agg.ActiveCount, agg.TotalCount,
		agg.BankAccountCount,
		agg.WalletCount,
		agg.CreditCount,
	)

	if len(accounts) == 0 {
		b.WriteString("_No accounts yet._\n")
		return b.String()
	}

	b.WriteString("| Name | Type | Institution | Number | Balance | Status |\n")
	b.WriteString("|---|---|---|---|---:|---|\n")
	for _, acc := range accounts {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			escapeCell(acc.Name),
			acc.Kind.Label(),
			escapeCell(acc.InstitutionName),
			bankaccount.MaskAccountNumber(acc.AccountNumber),
			f.Amount(acc.Balance.Decimal),
			status(acc.IsActive),
		)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown styles markdown for a terminal of the given width.
func RenderMarkdown(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
