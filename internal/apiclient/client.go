package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-manager/internal/bankaccount"
)

// ResourcePath is where the bank account collection lives on the API.
const ResourcePath = "/api/bank-accounts"

// RequestIDHeader carries a per-request id so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// DefaultMaxResponseBytes caps how much of a response body is read.
const DefaultMaxResponseBytes int64 = 8 << 20

// ErrResponseTooLarge is wrapped in a TransportError when a body exceeds the cap.
var ErrResponseTooLarge = errors.New("response body too large")

// Client talks to the bank account REST API.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	logger           logrus.FieldLogger
	maxResponseBytes int64
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) { c.maxResponseBytes = n }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logrus.StandardLogger(),

		maxResponseBytes: DefaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every account.
func (c *Client) List(ctx context.Context) ([]bankaccount.Account, error) {
	var accounts []bankaccount.Account
	if err := c.do(ctx, http.MethodGet, nil, nil, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []bankaccount.Account{}
	}
	return accounts, nil
}

// Create sends a new account. The returned account carries the assigned ID
// when the API echoes the record back.
func (c *Client) Create(ctx context.Context, draft bankaccount.Draft) (bankaccount.Account, error) {
	created := draft.WithID(0)
	if err := c.do(ctx, http.MethodPost, nil, draft, &created); err != nil {
		return bankaccount.Account{}, err
	}
	return created, nil
}

// Replace overwrites every field of the account identified by account.ID.
func (c *Client) Replace(ctx context.Context, account bankaccount.Account) (bankaccount.Account, error) {
	replaced := account
	if err := c.do(ctx, http.MethodPut, nil, account, &replaced); err != nil {
		return bankaccount.Account{}, err
	}
	return replaced, nil
}

// Delete removes the account with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	query := url.Values{"id": []string{strconv.FormatInt(id, 10)}}
	return c.do(ctx, http.MethodDelete, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + ResourcePath
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", method, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.Must(uuid.NewV4()).String()
	req.Header.Set(RequestIDHeader, requestID)

	log := c.logger.WithFields(logrus.Fields{
		"method":    method,
		"requestID": requestID,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("ApiClient.Request.transport error")
		return &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":     resp.StatusCode,
		"durationMs": time.Since(start).Milliseconds(),
	})

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	if err == nil && int64(len(respBody)) > c.maxResponseBytes {
		err = fmt.Errorf("%w: over %d bytes", ErrResponseTooLarge, c.maxResponseBytes)
	}
	if err != nil {
		log.WithError(err).Warn("ApiClient.Request.read error")
		return &TransportError{Method: method, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Detail:     problemDetail(respBody),
		}
		log.WithError(apiErr).Warn("ApiClient.Request.rejected")
		return apiErr
	}

	log.Debug("ApiClient.Request.complete")

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &DecodeError{Method: method, Err: err}
	}
	return nil
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
