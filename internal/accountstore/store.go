package accountstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-manager/internal/bankaccount"
)

// Remote is the API the store mirrors.
type Remote interface {
	List(ctx context.Context) ([]bankaccount.Account, error)
	Create(ctx context.Context, draft bankaccount.Draft) (bankaccount.Account, error)
	Replace(ctx context.Context, account bankaccount.Account) (bankaccount.Account, error)
	Delete(ctx context.Context, id int64) error
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Store holds the last fetched account list and runs every mutation through
// the remote API. Nothing is changed locally until the API confirms; each
// successful mutation is followed by a full reload.
type Store struct {
	remote   Remote
	notifier Notifier
	logger   logrus.FieldLogger

	mu       sync.RWMutex
	accounts []bankaccount.Account
	state    State
	err      error
}

type Option func(*Store)

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates an empty store. Call Load to populate it.
func New(remote Remote, opts ...Option) *Store {
	s := &Store{
		remote: remote,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = LogNotifier{Logger: s.logger}
	}
	return s
}

// Accounts returns a copy of the current list.
func (s *Store) Accounts() []bankaccount.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.accounts)
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the last load failure, or nil once a load succeeds.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Aggregates recomputes the summary over the current list.
func (s *Store) Aggregates() bankaccount.Aggregates {
	return bankaccount.Summarize(s.Accounts())
}

// Load fetches the full collection and replaces the in-memory list. On
// failure the previous list is kept and the store enters StateFailed.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	accounts, err := s.remote.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		loadErr := &LoadError{Kind: Classify(err), Err: err}
		s.state = StateFailed
		s.err = loadErr
		s.logger.WithError(err).WithField("failure", loadErr.Kind).Warn("AccountStore.Load.failed")
		return loadErr
	}

	s.accounts = accounts
	s.state = StateReady
	s.err = nil
	s.logger.WithField("accountCount", len(accounts)).Debug("AccountStore.Load.complete")
	return nil
}

// Add creates a new account.
func (s *Store) Add(ctx context.Context, draft bankaccount.Draft) error {
	return s.mutate(ctx, OpAdd, "Failed to add account", func(ctx context.Context) error {
		_, err := s.remote.Create(ctx, draft)
		return err
	}, &Notification{
		Title:       "Account Added",
		Description: fmt.Sprintf("Added %s account successfully", draft.InstitutionName),
		Variant:     VariantDefault,
	})
}

// Update replaces every field of an existing account.
func (s *Store) Update(ctx context.Context, account bankaccount.Account) error {
	if err := requireID(account.ID); err != nil {
		return s.fail(OpUpdate, "Failed to update account", err)
	}
	return s.mutate(ctx, OpUpdate, "Failed to update account", func(ctx context.Context) error {
		_, err := s.remote.Replace(ctx, account)
		return err
	}, &Notification{
		Title:       "Account Updated",
		Description: "Account has been successfully updated",
		Variant:     VariantDefault,
	})
}

// Remove deletes the account with the given id.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return s.fail(OpRemove, "Failed to delete account", err)
	}
	return s.mutate(ctx, OpRemove, "Failed to delete account", func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	}, &Notification{
		Title:       "Account Deleted",
		Description: "Account has been removed",
		Variant:     VariantDefault,
	})
}

// ToggleActive flips IsActive and sends the otherwise untouched record.
func (s *Store) ToggleActive(ctx context.Context, account bankaccount.Account) error {
	if err := requireID(account.ID); err != nil {
		return s.fail(OpToggle, "Failed to update account status", err)
	}
	toggled := account
	toggled.IsActive = !account.IsActive
	return s.mutate(ctx, OpToggle, "Failed to update account status", func(ctx context.Context) error {
		_, err := s.remote.Replace(ctx, toggled)
		return err
	}, nil)
}

// mutate runs call and, once it succeeds, reloads the list. A reload failure
// does not undo the reported success; it shows up through State and Err.
func (s *Store) mutate(ctx context.Context, op Operation, failMessage string, call func(context.Context) error, success *Notification) error {
	log := s.logger.WithField("operation", op)

	if err := call(ctx); err != nil {
		return s.fail(op, failMessage, err)
	}

	if err := s.Load(ctx); err != nil {
		log.WithError(err).Warn("AccountStore.Mutation.reload failed")
	}

	if success != nil {
		s.notifier.Notify(*success)
	}
	log.Info("AccountStore.Mutation.complete")
	return nil
}

func (s *Store) fail(op Operation, message string, err error) error {
	mutErr := &MutationError{Op: op, Kind: Classify(err), Err: err}
	s.logger.WithError(err).WithFields(logrus.Fields{
		"operation": op,
		"failure":   mutErr.Kind,
	}).Warn("AccountStore.Mutation.failed")
	s.notifier.Notify(failureNotification(message))
	return mutErr
}

func requireID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: account id %d", ErrInvalidInput, id)
	}
	return nil
}
