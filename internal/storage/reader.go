package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/account-manager/internal/storage/account"
)

type Reader struct {
	Accounts account.IAccountReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts: account.NewReader(exec),
	}
}
