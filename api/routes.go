package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/account-manager/internal/handlers/v1/account"
	"github.com/carson-networks/account-manager/internal/handlers/v1/status"
	"github.com/carson-networks/account-manager/internal/logging"
	"github.com/carson-networks/account-manager/internal/metrics"
	"github.com/carson-networks/account-manager/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Database status.Pinger
}

// Routes builds the mux with every endpoint registered.
func (r *Rest) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Database)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/metrics", metrics.Handler())

	humaAPI := humago.New(mux, huma.DefaultConfig("Account Manager", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	bankAccounts := r.Service.BankAccount
	account.NewListAccountsHandler(bankAccounts).Register(humaAPI)
	account.NewGetAccountHandler(bankAccounts).Register(humaAPI)
	account.NewCreateAccountHandler(bankAccounts).Register(humaAPI)
	account.NewUpdateAccountHandler(bankAccounts).Register(humaAPI)
	account.NewDeleteAccountHandler(bankAccounts).Register(humaAPI)

	return mux
}

// Serve listens until ctx is cancelled, then shuts down gracefully. It
// returns only after in-flight requests have drained or the shutdown
// timeout expired.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	return r.serve(ctx, server, listener)
}

func (r *Rest) serve(ctx context.Context, server *http.Server, listener net.Listener) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		r.Logger.WithField("addr", listener.Addr().String()).Info("HttpServer.Serve.listening")
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		r.Logger.Info("HttpServer.Serve.shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
			return err
		}
		return nil
	})

	return group.Wait()
}
