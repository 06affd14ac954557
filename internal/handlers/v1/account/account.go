package account

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/logging"
	"github.com/carson-networks/account-manager/internal/service"
)

const resourcePath = "/api/bank-accounts"

var accountTags = []string{"Bank Accounts"}

// Balance accepts a JSON number or numeric string and is written back as a
// number. Unparsable input becomes 0.
type Balance struct {
	bankaccount.Balance
}

func (Balance) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Account balance as a number or numeric string",
		OneOf: []*huma.Schema{
			{Type: huma.TypeNumber},
			{Type: huma.TypeString},
		},
	}
}

// BankAccountBody is the writable part of an account.
type BankAccountBody struct {
	Name          string  `json:"name" minLength:"1" doc:"Display name"`
	BankName      string  `json:"bankName" minLength:"1" doc:"Bank or e-wallet provider"`
	AccountNumber string  `json:"accountNumber" minLength:"1" doc:"Account or wallet number"`
	Balance       Balance `json:"balance"`
	Type          string  `json:"type" enum:"checking,savings,credit,ewallet" doc:"Account kind"`
	Color         string  `json:"color,omitempty" doc:"Display color, defaults to #3B82F6"`
	IsActive      *bool   `json:"isActive,omitempty" doc:"Whether the account counts toward totals, defaults to true"`
}

// BankAccount is the API model for a stored account.
type BankAccount struct {
	ID            int64   `json:"id" minimum:"1" doc:"Server assigned id"`
	Name          string  `json:"name" minLength:"1" doc:"Display name"`
	BankName      string  `json:"bankName" minLength:"1" doc:"Bank or e-wallet provider"`
	AccountNumber string  `json:"accountNumber" minLength:"1" doc:"Account or wallet number"`
	Balance       Balance `json:"balance"`
	Type          string  `json:"type" enum:"checking,savings,credit,ewallet" doc:"Account kind"`
	Color         string  `json:"color" doc:"Display color"`
	IsActive      bool    `json:"isActive" doc:"Whether the account counts toward totals"`
}

func (b BankAccountBody) draft() bankaccount.Draft {
	active := true
	if b.IsActive != nil {
		active = *b.IsActive
	}
	return bankaccount.Draft{
		Name:            b.Name,
		InstitutionName: b.BankName,
		AccountNumber:   b.AccountNumber,
		Balance:         b.Balance.Balance,
		Kind:            bankaccount.Kind(b.Type),
		Color:           b.Color,
		IsActive:        active,
	}
}

func (b BankAccount) account() bankaccount.Account {
	return bankaccount.Account{
		ID: b.ID,
		Draft: bankaccount.Draft{
			Name:            b.Name,
			InstitutionName: b.BankName,
			AccountNumber:   b.AccountNumber,
			Balance:         b.Balance.Balance,
			Kind:            bankaccount.Kind(b.Type),
			Color:           b.Color,
			IsActive:        b.IsActive,
		},
	}
}

func fromAccount(a bankaccount.Account) BankAccount {
	return BankAccount{
		ID:            a.ID,
		Name:          a.Name,
		BankName:      a.InstitutionName,
		AccountNumber: a.AccountNumber,
		Balance:       Balance{a.Balance},
		Type:          string(a.Kind),
		Color:         a.Color,
		IsActive:      a.IsActive,
	}
}

// serviceError maps service errors to HTTP statuses.
func serviceError(message string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAccount):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "bank account not found")
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}

func startTimer(logData *logging.LogData, name string) func() {
	if logData == nil {
		return func() {}
	}
	return logData.AddTiming(name)
}
