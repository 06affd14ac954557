package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/account-manager/internal/bankaccount"
	"github.com/carson-networks/account-manager/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) List(ctx context.Context) ([]bankaccount.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bankaccount.Account), args.Error(1)
}

func (m *mockAccountService) Get(ctx context.Context, id int64) (bankaccount.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bankaccount.Account), args.Error(1)
}

func (m *mockAccountService) Create(ctx context.Context, draft bankaccount.Draft) (bankaccount.Account, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(bankaccount.Account), args.Error(1)
}

func (m *mockAccountService) Replace(ctx context.Context, account bankaccount.Account) (bankaccount.Account, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(bankaccount.Account), args.Error(1)
}

func (m *mockAccountService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewCreateAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}

func storedAccount() bankaccount.Account {
	return bankaccount.Account{
		ID: 5,
		Draft: bankaccount.Draft{
			Name:            "Main",
			InstitutionName: "BCA",
			AccountNumber:   "1234567890",
			Balance:         bankaccount.RequireBalance("100.5"),
			Kind:            bankaccount.KindChecking,
			Color:           "#3B82F6",
			IsActive:        true,
		},
	}
}

// -- List --

func TestHTTP_ListAccounts_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("List", mock.Anything).Return([]bankaccount.Account{storedAccount()}, nil)

	resp := newTestAPI(t, svc).Get(resourcePath)

	require.Equal(t, http.StatusOK, resp.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, float64(5), body[0]["id"])
	assert.Equal(t, "BCA", body[0]["bankName"])
	assert.Equal(t, 100.5, body[0]["balance"])
	assert.Equal(t, "checking", body[0]["type"])
	assert.Equal(t, true, body[0]["isActive"])
}

func TestHTTP_ListAccounts_EmptyIsArray(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("List", mock.Anything).Return([]bankaccount.Account{}, nil)

	resp := newTestAPI(t, svc).Get(resourcePath)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_ListAccounts_ServiceError(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("List", mock.Anything).Return(nil, errors.New("db down"))

	resp := newTestAPI(t, svc).Get(resourcePath)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

// -- Create --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(d bankaccount.Draft) bool {
		return d.Name == "Main" &&
			d.InstitutionName == "BCA" &&
			d.Kind == bankaccount.KindChecking &&
			d.Balance.Equal(bankaccount.RequireBalance("100.5")) &&
			d.IsActive
	})).Return(storedAccount(), nil)

	resp := newTestAPI(t, svc).Post(resourcePath, map[string]any{
		"name":          "Main",
		"bankName":      "BCA",
		"accountNumber": "1234567890",
		"balance":       100.5,
		"type":          "checking",
		"color":         "#3B82F6",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body BankAccount
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_StringBalance(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(d bankaccount.Draft) bool {
		return d.Balance.Equal(bankaccount.RequireBalance("2500.75")) && !d.IsActive
	})).Return(storedAccount(), nil)

	resp := newTestAPI(t, svc).Post(resourcePath, map[string]any{
		"name":          "Wallet",
		"bankName":      "GoPay",
		"accountNumber": "0812",
		"balance":       "2500.75",
		"type":          "ewallet",
		"isActive":      false,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_UnknownType(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post(resourcePath, map[string]any{
		"name":          "Broker",
		"bankName":      "BCA",
		"accountNumber": "1",
		"balance":       1,
		"type":          "brokerage",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_InvalidFromService(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, mock.Anything).
		Return(bankaccount.Account{}, service.ErrInvalidAccount)

	resp := newTestAPI(t, svc).Post(resourcePath, map[string]any{
		"name":          " ",
		"bankName":      "BCA",
		"accountNumber": "1",
		"balance":       1,
		"type":          "checking",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// -- Replace --

func TestHTTP_ReplaceAccount_Success(t *testing.T) {
	stored := storedAccount()
	stored.IsActive = false

	svc := new(mockAccountService)
	svc.On("Replace", mock.Anything, mock.MatchedBy(func(a bankaccount.Account) bool {
		return a.ID == 5 && !a.IsActive && a.Name == "Main"
	})).Return(stored, nil)

	resp := newTestAPI(t, svc).Put(resourcePath, fromAccount(stored))

	require.Equal(t, http.StatusOK, resp.Code)
	var body BankAccount
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.False(t, body.IsActive)
	svc.AssertExpectations(t)
}

func TestHTTP_ReplaceAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Replace", mock.Anything, mock.Anything).Return(bankaccount.Account{}, service.ErrNotFound)

	resp := newTestAPI(t, svc).Put(resourcePath, fromAccount(storedAccount()))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "bank account not found")
}

// -- Delete --

func TestHTTP_DeleteAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Delete", mock.Anything, int64(5)).Return(nil)

	resp := newTestAPI(t, svc).Delete(resourcePath + "?id=5")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteAccount_MissingID(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Delete(resourcePath)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestHTTP_DeleteAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Delete", mock.Anything, int64(9)).Return(service.ErrNotFound)

	resp := newTestAPI(t, svc).Delete(resourcePath + "?id=9")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- Get --

func TestHTTP_GetAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Get", mock.Anything, int64(5)).Return(storedAccount(), nil)

	resp := newTestAPI(t, svc).Get(resourcePath + "/5")

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, float64(5), body["id"])
	assert.Equal(t, "Main", body["name"])
	assert.Equal(t, 100.5, body["balance"])
	svc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Get", mock.Anything, int64(9)).Return(bankaccount.Account{}, service.ErrNotFound)

	resp := newTestAPI(t, svc).Get(resourcePath + "/9")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
