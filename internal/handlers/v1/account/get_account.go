package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/logging"
)

type GetAccountInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Id of the account"`
}

type GetAccountOutput struct {
	Body BankAccount
}

type accountGetter interface {
	Get(ctx context.Context, id int64) (bankaccount.Account, error)
}

// GetAccountHandler handles GET /api/bank-accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-bank-account",
		Method:      http.MethodGet,
		Path:        resourcePath + "/{id}",
		Summary:     "Get a bank account",
		Tags:        accountTags,
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("accountID", input.ID)
	}

	stopTimer := startTimer(logData, "getAccountMs")
	acc, err := h.AccountService.Get(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to get bank account", err)
	}
	return &GetAccountOutput{Body: fromAccount(acc)}, nil
}
