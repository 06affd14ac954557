package service

import (
	"github.com/carson-networks/account-manager/internal/operator"
	"github.com/carson-networks/account-manager/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	BankAccount *BankAccountService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, op operator.IOperator) *Service {
	return &Service{
		BankAccount: NewBankAccountService(store.Read().Accounts, op),
	}
}
