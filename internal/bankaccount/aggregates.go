package bankaccount

import "github.com/shopspring/decimal"

// Aggregates are the summary figures shown above the account list.
type Aggregates struct {
	// TotalBalance sums active accounts, leaving out credit balances since
	// those are owed.
	TotalBalance     decimal.Decimal
	ActiveCount      int
	BankAccountCount int
	WalletCount      int
	CreditCount      int
	TotalCount       int
}

// Summarize derives the aggregates for a list of accounts.
func Summarize(accounts []Account) Aggregates {
	agg := Aggregates{
		TotalBalance: decimal.Zero,
		TotalCount:   len(accounts),
	}
	for _, acc := range accounts {
		if acc.IsActive {
			agg.ActiveCount++
			if !acc.Kind.IsLiability() {
				agg.TotalBalance = agg.TotalBalance.Add(acc.Balance.Decimal)
			}
		}
		switch {
		case acc.Kind.IsBank():
			agg.BankAccountCount++
		case acc.Kind == KindEWallet:
			agg.WalletCount++
		case acc.Kind == KindCredit:
			agg.CreditCount++
		}
	}
	return agg
}
