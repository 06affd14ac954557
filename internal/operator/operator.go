package operator

import (
	"context"

	"github.com/carson-networks/account-manager/internal/metrics"
	"github.com/carson-networks/account-manager/internal/operator/actions"
	"github.com/carson-networks/account-manager/internal/storage"
)

// Transactor opens the write transaction an action runs in.
// *storage.Storage satisfies it.
type Transactor interface {
	Write(ctx context.Context) (storage.IWriter, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage Transactor
	queue   chan ActionItem
}

func NewOperator(s Transactor, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		err := o.processItem(item)
		metrics.ObserveAction(item.action.Name(), err)
		item.response <- ActionItemResponse{err: err}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
