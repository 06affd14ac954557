package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ IAccountReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns every account ordered by name, then id.
func (r *Reader) List(ctx context.Context) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(TableName),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// FindByID returns ErrNotFound when no row matches.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Account, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(TableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return r.findOne(ctx, query)
}

func (r *Reader) findOne(ctx context.Context, query bob.Query) (*Account, error) {
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
