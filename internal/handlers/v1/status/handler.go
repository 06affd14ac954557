package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/account-manager/internal/logging"
)

// Pinger checks that a dependency is reachable. *storage.Storage satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Database Pinger
}

func NewHandler(db Pinger) Handler {
	return Handler{Database: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Database != nil {
		stopTimer := logData.AddTiming("pingMs")
		err := h.Database.Ping(req.Context())
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return err
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
