package bankaccount

import (
	"fmt"
	"slices"
)

// Kind identifies what sort of account a record describes.
type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
	KindCredit   Kind = "credit"
	KindEWallet  Kind = "ewallet"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindChecking, KindSavings, KindCredit, KindEWallet}

type kindInfo struct {
	label     string
	providers []string
}

var kindTable = map[Kind]kindInfo{
	KindChecking: {label: "Checking", providers: Banks},
	KindSavings:  {label: "Savings", providers: Banks},
	KindCredit:   {label: "Credit Card", providers: Banks},
	KindEWallet:  {label: "E-Wallet", providers: EWallets},
}

// ParseKind converts the wire value into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown account type %q", s)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Label returns the human readable name, or the raw value for unknown kinds.
func (k Kind) Label() string {
	if info, ok := kindTable[k]; ok {
		return info.label
	}
	return string(k)
}

// Providers returns the institutions an account of this kind may be held at.
// Unknown kinds fall back to the bank list.
func (k Kind) Providers() []string {
	if info, ok := kindTable[k]; ok {
		return info.providers
	}
	return Banks
}

// AcceptsProvider reports whether name is in the provider list for k.
func (k Kind) AcceptsProvider(name string) bool {
	return slices.Contains(k.Providers(), name)
}

// IsBank reports whether k is a traditional bank account.
func (k Kind) IsBank() bool {
	return k == KindChecking || k == KindSavings
}

// IsLiability reports whether balances of this kind are owed rather than held.
func (k Kind) IsLiability() bool {
	return k == KindCredit
}
