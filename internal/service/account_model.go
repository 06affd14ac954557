package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/storage/account"
)

var (
	ErrNotFound       = errors.New("bank account not found")
	ErrInvalidAccount = errors.New("invalid bank account")
)

func accountFromStorage(row *account.Account) bankaccount.Account {
	return bankaccount.Account{
		ID: row.ID,
		Draft: bankaccount.Draft{
			Name:            row.Name,
			InstitutionName: row.BankName,
			AccountNumber:   row.AccountNumber,
			Balance:         bankaccount.NewBalance(row.Balance),
			Kind:            bankaccount.Kind(row.Type),
			Color:           row.Color,
			IsActive:        row.IsActive,
		},
	}
}

func draftToStorage(d bankaccount.Draft) *account.AccountWrite {
	color := d.Color
	if color == "" {
		color = bankaccount.Colors[0]
	}
	return &account.AccountWrite{
		Name:          strings.TrimSpace(d.Name),
		BankName:      strings.TrimSpace(d.InstitutionName),
		AccountNumber: strings.TrimSpace(d.AccountNumber),
		Balance:       d.Balance.Decimal,
		Type:          string(d.Kind),
		Color:         color,
		IsActive:      d.IsActive,
	}
}

func validateDraft(d bankaccount.Draft) error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.InstitutionName) == "" {
		missing = append(missing, "bankName")
	}
	if strings.TrimSpace(d.AccountNumber) == "" {
		missing = append(missing, "accountNumber")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required %s", ErrInvalidAccount, strings.Join(missing, ", "))
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidAccount, d.Kind)
	}
	return nil
}
