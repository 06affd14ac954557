package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/logging"
)

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body []BankAccount
}

type accountLister interface {
	List(ctx context.Context) ([]bankaccount.Account, error)
}

// ListAccountsHandler handles GET /api/bank-accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-bank-accounts",
		Method:      http.MethodGet,
		Path:        resourcePath,
		Summary:     "List bank accounts",
		Description: "Returns every bank account, e-wallet and credit card.",
		Tags:        accountTags,
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, _ *struct{}) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := startTimer(logData, "listAccountsMs")
	accounts, err := h.AccountService.List(ctx)
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to list bank accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	body := make([]BankAccount, len(accounts))
	for i, acc := range accounts {
		body[i] = fromAccount(acc)
	}
	return &ListAccountsOutput{Body: body}, nil
}
