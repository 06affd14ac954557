package accountstore

import (
	"errors"
	"fmt"
	"net"

	"github.com/carson-networks/account-manager/internal/apiclient"
)

// FailureKind classifies why a remote call failed.
type FailureKind string

const (
	FailureNetwork  FailureKind = "network"
	FailureRejected FailureKind = "rejected"
	FailureServer   FailureKind = "server"
	FailureInvalid  FailureKind = "invalid"
	FailureUnknown  FailureKind = "unknown"
)

// ErrInvalidInput marks failures caught before anything was sent.
var ErrInvalidInput = errors.New("invalid input")

// Classify maps an error from the remote collaborator to a FailureKind.
func Classify(err error) FailureKind {
	var apiErr *apiclient.APIError
	var transportErr *apiclient.TransportError
	var netErr net.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return FailureInvalid
	case errors.As(err, &apiErr):
		if apiErr.Rejected() {
			return FailureRejected
		}
		return FailureServer
	case errors.As(err, &transportErr), errors.As(err, &netErr):
		return FailureNetwork
	default:
		return FailureUnknown
	}
}

// LoadError reports a failed collection fetch.
type LoadError struct {
	Kind FailureKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load accounts (%s): %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Operation names a mutating store call.
type Operation string

const (
	OpAdd    Operation = "add"
	OpUpdate Operation = "update"
	OpRemove Operation = "remove"
	OpToggle Operation = "toggle"
)

// MutationError reports a failed create, update, delete or toggle.
type MutationError struct {
	Op   Operation
	Kind FailureKind
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s account (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
