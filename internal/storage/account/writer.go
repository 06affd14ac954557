package account

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ IAccountWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a row and returns the id assigned by the database.
func (w *Writer) Insert(ctx context.Context, create *AccountWrite) (int64, error) {
	query := psql.Insert(
		im.Into(TableName, "name", "bank_name", "account_number", "balance", "type", "color", "is_active"),
		im.Values(
			psql.Arg(create.Name),
			psql.Arg(create.BankName),
			psql.Arg(create.AccountNumber),
			psql.Arg(create.Balance),
			psql.Arg(create.Type),
			psql.Arg(create.Color),
			psql.Arg(create.IsActive),
		),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[int64])
}

// Replace overwrites every writable column. Returns ErrNotFound when the id
// does not exist.
func (w *Writer) Replace(ctx context.Context, id int64, replace *AccountWrite) error {
	query := psql.Update(
		um.Table(TableName),
		um.SetCol("name").ToArg(replace.Name),
		um.SetCol("bank_name").ToArg(replace.BankName),
		um.SetCol("account_number").ToArg(replace.AccountNumber),
		um.SetCol("balance").ToArg(replace.Balance),
		um.SetCol("type").ToArg(replace.Type),
		um.SetCol("color").ToArg(replace.Color),
		um.SetCol("is_active").ToArg(replace.IsActive),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execOne(ctx, query)
}

// Delete removes the row. Returns ErrNotFound when the id does not exist.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	query := psql.Delete(
		dm.From(TableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return w.execOne(ctx, query)
}

func (w *Writer) execOne(ctx context.Context, query bob.Query) error {
	res, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
