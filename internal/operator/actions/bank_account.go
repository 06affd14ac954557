package actions

import (
	"context"

	"github.com/carson-networks/account-manager/internal/storage"
	"github.com/carson-networks/account-manager/internal/storage/account"
)

// CreateBankAccount inserts a row. CreatedID is set once Perform succeeds.
type CreateBankAccount struct {
	Account   *account.AccountWrite
	CreatedID int64
}

func (c *CreateBankAccount) Name() string { return "create_bank_account" }

func (c *CreateBankAccount) Perform(ctx context.Context, writer storage.IWriter) error {
	id, err := writer.Accounts().Insert(ctx, c.Account)
	if err != nil {
		return err
	}
	c.CreatedID = id
	return nil
}

// ReplaceBankAccount overwrites every column of an existing row.
type ReplaceBankAccount struct {
	ID      int64
	Account *account.AccountWrite
}

func (r *ReplaceBankAccount) Name() string { return "replace_bank_account" }

func (r *ReplaceBankAccount) Perform(ctx context.Context, writer storage.IWriter) error {
	return writer.Accounts().Replace(ctx, r.ID, r.Account)
}

type DeleteBankAccount struct {
	ID int64
}

func (d *DeleteBankAccount) Name() string { return "delete_bank_account" }

func (d *DeleteBankAccount) Perform(ctx context.Context, writer storage.IWriter) error {
	return writer.Accounts().Delete(ctx, d.ID)
}
