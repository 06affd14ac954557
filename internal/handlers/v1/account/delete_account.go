package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-manager/internal/logging"
)

type DeleteAccountInput struct {
	ID int64 `query:"id" required:"true" minimum:"1" doc:"Id of the account to delete"`
}

type accountDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteAccountHandler handles DELETE /api/bank-accounts?id=.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-bank-account",
		Method:        http.MethodDelete,
		Path:          resourcePath,
		Summary:       "Delete a bank account",
		Tags:          accountTags,
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.ID)
	}

	stopTimer := startTimer(logData, "deleteAccountMs")
	err := h.AccountService.Delete(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to delete bank account", err)
	}
	return nil, nil
}
