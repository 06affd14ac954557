package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/logging"
)

// UpdateAccountInput carries the full replacement record, id included.
type UpdateAccountInput struct {
	Body BankAccount
}

type UpdateAccountOutput struct {
	Body BankAccount
}

type accountReplacer interface {
	Replace(ctx context.Context, account bankaccount.Account) (bankaccount.Account, error)
}

// UpdateAccountHandler handles PUT /api/bank-accounts.
type UpdateAccountHandler struct {
	AccountService accountReplacer
}

func NewUpdateAccountHandler(svc accountReplacer) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "replace-bank-account",
		Method:      http.MethodPut,
		Path:        resourcePath,
		Summary:     "Replace a bank account",
		Description: "Replaces every field of the account identified by the body id.",
		Tags:        accountTags,
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.Body.ID)
	}

	stopTimer := startTimer(logData, "replaceAccountMs")
	replaced, err := h.AccountService.Replace(ctx, input.Body.account())
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to replace bank account", err)
	}

	return &UpdateAccountOutput{Body: fromAccount(replaced)}, nil
}
