package account

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const TableName = "bank_accounts"

var ErrNotFound = errors.New("bank account not found")

var columns = []any{
	"id",
	"name",
	"bank_name",
	"account_number",
	"balance",
	"type",
	"color",
	"is_active",
	"created_at",
	"updated_at",
}

// Account represents a bank_accounts row.
type Account struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	Type          string          `db:"type"`
	Color         string          `db:"color"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// AccountWrite carries every writable column. Inserts and replacements both
// set all of them.
type AccountWrite struct {
	Name          string
	BankName      string
	AccountNumber string
	Balance       decimal.Decimal
	Type          string
	Color         string
	IsActive      bool
}

// IAccountReader defines read access to bank accounts.
type IAccountReader interface {
	List(ctx context.Context) ([]*Account, error)
	FindByID(ctx context.Context, id int64) (*Account, error)
}

// IAccountWriter defines write access inside a transaction.
//
//go:generate mockery --name IAccountWriter --output mock_IAccountWriter.go
type IAccountWriter interface {
	IAccountReader
	Insert(ctx context.Context, create *AccountWrite) (int64, error)
	Replace(ctx context.Context, id int64, replace *AccountWrite) error
	Delete(ctx context.Context, id int64) error
}
