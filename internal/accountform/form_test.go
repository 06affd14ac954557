package accountform

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/account-manager/internal/bankaccount"
)

func existingAccount() bankaccount.Account {
	return bankaccount.Account{
		ID: 17,
		Draft: bankaccount.Draft{
			Name:            "Payroll",
			InstitutionName: "Mandiri",
			AccountNumber:   "1234567890",
			Balance:         bankaccount.RequireBalance("2500000.50"),
			Kind:            bankaccount.KindSavings,
			Color:           "#10B981",
			IsActive:        false,
		},
	}
}

func fillRequired(t *testing.T, c *Controller) {
	t.Helper()
	c.SetName("Main")
	require.NoError(t, c.SetInstitutionName("BCA"))
	c.SetAccountNumber("9876543210")
}

func TestNew_Defaults(t *testing.T) {
	c := New()

	assert.False(t, c.IsEditing())
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, bankaccount.KindChecking, c.Kind())
	assert.Equal(t, bankaccount.Colors[0], c.Color())
	assert.True(t, c.IsActive())
	assert.Equal(t, "0", c.BalanceText())
	assert.Empty(t, c.Name())
	assert.Empty(t, c.InstitutionName())
	assert.Equal(t, bankaccount.Banks, c.Providers())
}

func TestEdit_PrefillsFields(t *testing.T) {
	acc := existingAccount()
	c := Edit(acc)

	assert.True(t, c.IsEditing())
	assert.Equal(t, acc.Name, c.Name())
	assert.Equal(t, acc.InstitutionName, c.InstitutionName())
	assert.Equal(t, acc.AccountNumber, c.AccountNumber())
	assert.Equal(t, "2500000.5", c.BalanceText())
	assert.Equal(t, acc.Kind, c.Kind())
	assert.Equal(t, acc.Color, c.Color())
	assert.Equal(t, acc.IsActive, c.IsActive())
}

func TestSubmit_EditWithoutChangesRoundTrips(t *testing.T) {
	acc := existingAccount()

	sub, err := Edit(acc).Submit()

	require.NoError(t, err)
	assert.False(t, sub.IsNew())
	assert.Equal(t, acc, sub.Account())
}

func TestSubmit_EditKeepsIDAndAppliesChanges(t *testing.T) {
	c := Edit(existingAccount())
	c.SetName("Salary")
	c.SetBalanceText("12.50")
	c.SetActive(true)

	sub, err := c.Submit()

	require.NoError(t, err)
	assert.Equal(t, int64(17), sub.ID)
	assert.Equal(t, "Salary", sub.Draft.Name)
	assert.True(t, sub.Draft.Balance.Decimal.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, sub.Draft.IsActive)
	assert.Equal(t, "Mandiri", sub.Draft.InstitutionName)
}

func TestSubmit_NewAccountHasNoID(t *testing.T) {
	c := New()
	fillRequired(t, c)

	sub, err := c.Submit()

	require.NoError(t, err)
	assert.True(t, sub.IsNew())
	assert.Zero(t, sub.ID)
	assert.Equal(t, "BCA", sub.Draft.InstitutionName)
	assert.Equal(t, bankaccount.KindChecking, sub.Draft.Kind)
	assert.True(t, sub.Draft.Balance.IsZero())
}

func TestSubmit_BalanceParsing(t *testing.T) {
	cases := map[string]string{
		"12.50":   "12.5",
		"12.5abc": "0",
		"":        "0",
		"-300":    "-300",
	}

	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			c := New()
			fillRequired(t, c)
			c.SetBalanceText(text)

			sub, err := c.Submit()

			require.NoError(t, err)
			assert.True(t, sub.Draft.Balance.Decimal.Equal(decimal.RequireFromString(want)), "got %s", sub.Draft.Balance)
		})
	}
}

func TestSubmit_RequiresFields(t *testing.T) {
	c := New()
	c.SetName("   ")

	_, err := c.Submit()

	assert.True(t, errors.Is(err, ErrInvalidField))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "bankName")
	assert.Contains(t, err.Error(), "accountNumber")
	assert.Equal(t, StateIdle, c.State(), "a failed submit keeps the form editable")
}

func TestSubmit_Twice(t *testing.T) {
	c := New()
	fillRequired(t, c)

	_, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, c.State())

	_, err = c.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSetKind_ClearsInstitutionNotOfferedForNewKind(t *testing.T) {
	c := New()
	require.NoError(t, c.SetInstitutionName("BCA"))

	require.NoError(t, c.SetKind(bankaccount.KindEWallet))

	assert.Empty(t, c.InstitutionName())
	assert.Equal(t, bankaccount.EWallets, c.Providers())
}

func TestSetKind_KeepsInstitutionStillOffered(t *testing.T) {
	c := New()
	require.NoError(t, c.SetInstitutionName("BNI"))

	require.NoError(t, c.SetKind(bankaccount.KindSavings))

	assert.Equal(t, "BNI", c.InstitutionName())
}

func TestSetKind_RejectsUnknown(t *testing.T) {
	c := New()

	err := c.SetKind("brokerage")

	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, bankaccount.KindChecking, c.Kind())
}

func TestSetInstitutionName_RejectsProviderOfOtherKind(t *testing.T) {
	c := New()

	err := c.SetInstitutionName("GoPay")

	assert.ErrorIs(t, err, ErrInvalidField)
	assert.Empty(t, c.InstitutionName())
}

type mockTarget struct {
	mock.Mock
}

func (m *mockTarget) Add(ctx context.Context, draft bankaccount.Draft) error {
	return m.Called(ctx, draft).Error(0)
}

func (m *mockTarget) Update(ctx context.Context, account bankaccount.Account) error {
	return m.Called(ctx, account).Error(0)
}

func TestApply_NewGoesToAdd(t *testing.T) {
	c := New()
	fillRequired(t, c)
	sub, err := c.Submit()
	require.NoError(t, err)

	target := new(mockTarget)
	target.On("Add", mock.Anything, sub.Draft).Return(nil).Once()

	assert.NoError(t, sub.Apply(context.Background(), target))
	target.AssertExpectations(t)
	target.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApply_EditGoesToUpdate(t *testing.T) {
	acc := existingAccount()
	sub, err := Edit(acc).Submit()
	require.NoError(t, err)

	target := new(mockTarget)
	target.On("Update", mock.Anything, acc).Return(errors.New("boom")).Once()

	assert.Error(t, sub.Apply(context.Background(), target))
	target.AssertExpectations(t)
}

func TestApply_EditWithZeroIDStillGoesToUpdate(t *testing.T) {
	acc := existingAccount()
	acc.ID = 0
	sub, err := Edit(acc).Submit()
	require.NoError(t, err)
	assert.False(t, sub.IsNew())

	target := new(mockTarget)
	target.On("Update", mock.Anything, acc).Return(errors.New("invalid account id")).Once()

	err = sub.Apply(context.Background(), target)

	require.Error(t, err)
	target.AssertExpectations(t)
	target.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
