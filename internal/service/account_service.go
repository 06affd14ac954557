package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/operator"
	"github.com/carson-networks/account-manager/internal/operator/actions"
	"github.com/carson-networks/account-manager/internal/storage/account"
)

// BankAccountService reads through the storage reader and sends every write
// through the operator.
type BankAccountService struct {
	accounts account.IAccountReader
	operator operator.IOperator
}

func NewBankAccountService(accounts account.IAccountReader, op operator.IOperator) *BankAccountService {
	return &BankAccountService{
		accounts: accounts,
		operator: op,
	}
}

func (s *BankAccountService) List(ctx context.Context) ([]bankaccount.Account, error) {
	rows, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]bankaccount.Account, len(rows))
	for i, row := range rows {
		result[i] = accountFromStorage(row)
	}
	return result, nil
}

func (s *BankAccountService) Get(ctx context.Context, id int64) (bankaccount.Account, error) {
	row, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return bankaccount.Account{}, mapStorageError(err)
	}
	return accountFromStorage(row), nil
}

// Create stores a new account and returns it with the assigned id.
func (s *BankAccountService) Create(ctx context.Context, draft bankaccount.Draft) (bankaccount.Account, error) {
	if err := validateDraft(draft); err != nil {
		return bankaccount.Account{}, err
	}

	action := &actions.CreateBankAccount{Account: draftToStorage(draft)}
	if err := s.operator.Process(ctx, action); err != nil {
		return bankaccount.Account{}, err
	}
	return s.written(action.CreatedID, action.Account), nil
}

// Replace overwrites every field of an existing account.
func (s *BankAccountService) Replace(ctx context.Context, acc bankaccount.Account) (bankaccount.Account, error) {
	if acc.ID <= 0 {
		return bankaccount.Account{}, fmt.Errorf("%w: id %d", ErrInvalidAccount, acc.ID)
	}
	if err := validateDraft(acc.Draft); err != nil {
		return bankaccount.Account{}, err
	}

	action := &actions.ReplaceBankAccount{ID: acc.ID, Account: draftToStorage(acc.Draft)}
	if err := s.operator.Process(ctx, action); err != nil {
		return bankaccount.Account{}, mapStorageError(err)
	}
	return s.written(acc.ID, action.Account), nil
}

func (s *BankAccountService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidAccount, id)
	}
	return mapStorageError(s.operator.Process(ctx, &actions.DeleteBankAccount{ID: id}))
}

func (s *BankAccountService) written(id int64, w *account.AccountWrite) bankaccount.Account {
	return accountFromStorage(&account.Account{
		ID:            id,
		Name:          w.Name,
		BankName:      w.BankName,
		AccountNumber: w.AccountNumber,
		Balance:       w.Balance,
		Type:          w.Type,
		Color:         w.Color,
		IsActive:      w.IsActive,
	})
}

func mapStorageError(err error) error {
	if errors.Is(err, account.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
