// Package accountform holds the editable draft of a single account while it is
// being created or edited, and turns it into a finished record on submit.
package accountform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carson-networks/account-manager/internal/bankaccount"
)

var (
	ErrAlreadySubmitted = errors.New("form already submitted")
	ErrInvalidField     = errors.New("invalid field")
)

type State int

const (
	StateIdle State = iota
	StateSubmitted
)

// Controller manages the draft fields for one account. Balance is kept as the
// raw text the user typed and only parsed on Submit.
type Controller struct {
	original *bankaccount.Account
	state    State

	name            string
	institutionName string
	accountNumber   string
	balanceText     string
	kind            bankaccount.Kind
	color           string
	isActive        bool
}

// New starts a form for a new account.
func New() *Controller {
	return &Controller{
		balanceText: "0",
		kind:        bankaccount.KindChecking,
		color:       bankaccount.Colors[0],
		isActive:    true,
	}
}

// Edit starts a form prefilled from an existing account.
func Edit(account bankaccount.Account) *Controller {
	original := account
	return &Controller{
		original:        &original,
		name:            account.Name,
		institutionName: account.InstitutionName,
		accountNumber:   account.AccountNumber,
		balanceText:     account.Balance.String(),
		kind:            account.Kind,
		color:           account.Color,
		isActive:        account.IsActive,
	}
}

func (c *Controller) IsEditing() bool { return c.original != nil }
func (c *Controller) State() State    { return c.state }

func (c *Controller) Name() string            { return c.name }
func (c *Controller) InstitutionName() string { return c.institutionName }
func (c *Controller) AccountNumber() string   { return c.accountNumber }
func (c *Controller) BalanceText() string     { return c.balanceText }
func (c *Controller) Kind() bankaccount.Kind  { return c.kind }
func (c *Controller) Color() string           { return c.color }
func (c *Controller) IsActive() bool          { return c.isActive }

func (c *Controller) SetName(v string)          { c.name = v }
func (c *Controller) SetAccountNumber(v string) { c.accountNumber = v }
func (c *Controller) SetBalanceText(v string)   { c.balanceText = v }
func (c *Controller) SetColor(v string)         { c.color = v }
func (c *Controller) SetActive(v bool)          { c.isActive = v }

// Providers lists the institutions offered for the current kind.
func (c *Controller) Providers() []string {
	return c.kind.Providers()
}

// SetInstitutionName picks the bank or e-wallet provider. It must be one of
// Providers().
func (c *Controller) SetInstitutionName(name string) error {
	if !c.kind.AcceptsProvider(name) {
		return fmt.Errorf("%w: %q is not offered for %s accounts", ErrInvalidField, name, c.kind.Label())
	}
	c.institutionName = name
	return nil
}

// SetKind changes the account kind. If the selected institution is not
// offered for the new kind it is cleared.
func (c *Controller) SetKind(kind bankaccount.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown account type %q", ErrInvalidField, kind)
	}
	c.kind = kind
	if c.institutionName != "" && !kind.AcceptsProvider(c.institutionName) {
		c.institutionName = ""
	}
	return nil
}

// Submission is the finished record produced by Submit.
type Submission struct {
	// ID is zero for new accounts.
	ID    int64
	Draft bankaccount.Draft
	// editing is set when the form was opened with Edit, whatever the ID.
	editing bool
}

func (s Submission) IsNew() bool { return !s.editing }

// Account returns the record to send as a full replacement. Only valid for
// edits.
func (s Submission) Account() bankaccount.Account {
	return s.Draft.WithID(s.ID)
}

// Target receives submissions. *accountstore.Store satisfies it.
type Target interface {
	Add(ctx context.Context, draft bankaccount.Draft) error
	Update(ctx context.Context, account bankaccount.Account) error
}

// Apply hands the submission to the store operation that matches it.
func (s Submission) Apply(ctx context.Context, target Target) error {
	if s.IsNew() {
		return target.Add(ctx, s.Draft)
	}
	return target.Update(ctx, s.Account())
}

// Submit validates the fields and produces the record. After a successful
// submit the controller is finished and further submits fail.
func (c *Controller) Submit() (Submission, error) {
	if c.state == StateSubmitted {
		return Submission{}, ErrAlreadySubmitted
	}
	if err := c.validate(); err != nil {
		return Submission{}, err
	}

	draft := bankaccount.Draft{
		Name:            c.name,
		InstitutionName: c.institutionName,
		AccountNumber:   c.accountNumber,
		Balance:         c.balance(),
		Kind:            c.kind,
		Color:           c.color,
		IsActive:        c.isActive,
	}

	sub := Submission{Draft: draft}
	if c.original != nil {
		sub.ID = c.original.ID
		sub.editing = true
	}
	c.state = StateSubmitted
	return sub, nil
}

// balance keeps the original value when editing and the text is untouched,
// so 100.50 is not rewritten as 100.5.
func (c *Controller) balance() bankaccount.Balance {
	if c.original != nil && c.balanceText == c.original.Balance.String() {
		return c.original.Balance
	}
	return bankaccount.NewBalance(bankaccount.ParseBalance(c.balanceText))
}

func (c *Controller) validate() error {
	var missing []string
	if strings.TrimSpace(c.name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(c.institutionName) == "" {
		missing = append(missing, "bankName")
	}
	if strings.TrimSpace(c.accountNumber) == "" {
		missing = append(missing, "accountNumber")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required %s", ErrInvalidField, strings.Join(missing, ", "))
	}
	if !c.kind.Valid() {
		return fmt.Errorf("%w: unknown account type %q", ErrInvalidField, c.kind)
	}
	return nil
}
