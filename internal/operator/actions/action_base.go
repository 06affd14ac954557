package actions

import (
	"context"

	"github.com/carson-networks/account-manager/internal/storage"
)

type IAction interface {
	// Name labels the action in metrics and logs.
	Name() string
	Perform(ctx context.Context, writer storage.IWriter) error
}
