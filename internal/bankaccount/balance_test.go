package bankaccount

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBalance(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.50", "12.5"},
		{"12.5abc", "0"},
		{"", "0"},
		{"  42 ", "42"},
		{"-7.25", "-7.25"},
		{"NaN", "0"},
		{"Infinity", "0"},
		{"1,000", "0"},
		{"12.345", "12.35"},
		{"999999999999999999.99", "999999999999999999.99"},
		{"999999999999999999.995", "0"},
		{"1e18", "0"},
		{"-1e18", "0"},
		{"1e100000000", "0"},
		{"1e-100000000", "0"},
		{"0.004", "0"},
		{"1.5e3", "1500"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseBalance(tc.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "ParseBalance(%q) = %s", tc.in, got)
		})
	}
}

func TestBalance_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"number", `100.75`, "100.75"},
		{"string", `"200.10"`, "200.1"},
		{"garbage string", `"abc"`, "0"},
		{"null", `null`, "0"},
		{"negative string", `"-15"`, "-15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Balance
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &b))
			assert.True(t, b.Decimal.Equal(decimal.RequireFromString(tc.want)), "got %s", b)
		})
	}
}

func TestSummarize_HugeExponentIsIgnored(t *testing.T) {
	raw := `[
		{"id": 1, "name": "A", "bankName": "BCA", "accountNumber": "1", "balance": "1e100000000", "type": "checking", "color": "#3B82F6", "isActive": true},
		{"id": 2, "name": "B", "bankName": "BCA", "accountNumber": "2", "balance": 0.5, "type": "checking", "color": "#3B82F6", "isActive": true}
	]`

	var accounts []Account
	require.NoError(t, json.Unmarshal([]byte(raw), &accounts))
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].Balance.IsZero())

	done := make(chan Aggregates, 1)
	go func() { done <- Summarize(accounts) }()

	select {
	case agg := <-done:
		assert.True(t, agg.TotalBalance.Equal(decimal.RequireFromString("0.5")), "got %s", agg.TotalBalance)
	case <-time.After(5 * time.Second):
		t.Fatal("Summarize did not return")
	}
}

func TestBalance_MarshalJSONIsNumber(t *testing.T) {
	out, err := json.Marshal(RequireBalance("1234.5"))
	require.NoError(t, err)
	assert.Equal(t, `1234.5`, string(out))
}

func TestAccount_DecodesMixedBalances(t *testing.T) {
	raw := `[
		{"id": 1, "name": "Main", "bankName": "BCA", "accountNumber": "1234567890", "balance": "1500000.00", "type": "checking", "color": "#3B82F6", "isActive": true},
		{"id": 2, "name": "Wallet", "bankName": "GoPay", "accountNumber": "081234567890", "balance": 250000, "type": "ewallet", "color": "#10B981", "isActive": false}
	]`

	var accounts []Account
	require.NoError(t, json.Unmarshal([]byte(raw), &accounts))
	require.Len(t, accounts, 2)

	assert.Equal(t, int64(1), accounts[0].ID)
	assert.Equal(t, "BCA", accounts[0].InstitutionName)
	assert.Equal(t, KindChecking, accounts[0].Kind)
	assert.True(t, accounts[0].Balance.Equal(RequireBalance("1500000")))

	assert.Equal(t, KindEWallet, accounts[1].Kind)
	assert.False(t, accounts[1].IsActive)
	assert.True(t, accounts[1].Balance.Equal(RequireBalance("250000")))
}

func TestDraft_HasNoIDField(t *testing.T) {
	out, err := json.Marshal(Draft{Name: "Main", Kind: KindSavings})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.NotContains(t, fields, "id")
	assert.Equal(t, "savings", fields["type"])
}
