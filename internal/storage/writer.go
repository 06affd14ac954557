package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/account-manager/internal/storage/account"
)

// IWriter is a single transaction. Actions write through Accounts and the
// caller ends it with Commit or Rollback.
//
//go:generate mockery --name IWriter --output mock_IWriter.go
type IWriter interface {
	Accounts() account.IAccountWriter
	Commit() error
	Rollback() error
}

type Writer struct {
	tx      bob.Tx
	account *account.Writer
}

var _ IWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:      tx,
		account: account.NewWriter(tx),
	}
}

func (w *Writer) Accounts() account.IAccountWriter {
	return w.account
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
