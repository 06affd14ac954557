package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/logging"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body BankAccountBody
}

// CreateAccountOutput returns the stored account with its new id.
type CreateAccountOutput struct {
	Status int
	Body   BankAccount
}

type accountCreator interface {
	Create(ctx context.Context, draft bankaccount.Draft) (bankaccount.Account, error)
}

// CreateAccountHandler handles POST /api/bank-accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-bank-account",
		Method:        http.MethodPost,
		Path:          resourcePath,
		Summary:       "Create a bank account",
		Description:   "Creates an account. The server assigns the id.",
		Tags:          accountTags,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := startTimer(logData, "createAccountMs")
	created, err := h.AccountService.Create(ctx, input.Body.draft())
	stopTimer()
	if err != nil {
		return nil, serviceError("failed to create bank account", err)
	}

	if logData != nil {
		logData.AddData("accountID", created.ID)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   fromAccount(created),
	}, nil
}
