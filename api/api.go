// Package api is the typed HTTP client for the expense-tracker backend. It
// implements the REST contract only; the app treats every call as a black
// box that either returns a value or fails.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to one backend instance on behalf of one session.
type Client struct {
	// HTTP is exported so callers can wrap the transport, e.g. for
	// request logging.
	HTTP *http.Client

	baseURL *url.URL
	token   string
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsAuthError reports whether err is a 401 from the backend.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// NewClient creates a client for the backend at baseURL. The token may be
// empty for the unauthenticated login and register calls.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("api: base URL is required")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}

	return &Client{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		baseURL: u,
		token:   token,
	}, nil
}

// SetToken replaces the session token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("api: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decoding response: %w", err)
	}
	return nil
}

// Login exchanges credentials for a session. The client adopts the session
// token on success.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, creds, &session); err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, req, &session); err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// Logout invalidates the current session token on the backend.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/users/logout", nil, nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// GetUser fetches the profile for the session's account.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateIncome sets the monthly salary and fixed deduction and returns the
// updated profile.
func (c *Client) UpdateIncome(ctx context.Context, update IncomeUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/expenses/income", nil, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AddExpense records a new expense and returns the stored record.
func (c *Client) AddExpense(ctx context.Context, create ExpenseCreate) (*ExpenseRecord, error) {
	var record ExpenseRecord
	if err := c.do(ctx, http.MethodPost, "/expenses/add", nil, create, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListExpenses fetches the stored expenses, optionally narrowed to a date
// range.
func (c *Client) ListExpenses(ctx context.Context, filters *ExpenseFilters) ([]*ExpenseRecord, error) {
	query := url.Values{}
	if filters != nil {
		if filters.StartDate != nil {
			query.Set("start_date", *filters.StartDate)
		}
		if filters.EndDate != nil {
			query.Set("end_date", *filters.EndDate)
		}
	}

	var records []*ExpenseRecord
	if err := c.do(ctx, http.MethodGet, "/expenses", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteExpense removes a stored expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, nil, nil)
}

// GetBalance fetches the backend's balance as of the given date
// (YYYY-MM-DD).
func (c *Client) GetBalance(ctx context.Context, asOf string) (*BalanceResponse, error) {
	var balance BalanceResponse
	if err := c.do(ctx, http.MethodGet, "/expenses/balance/"+url.PathEscape(asOf), nil, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// GetSummary fetches the backend's aggregate expense summary.
func (c *Client) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := c.do(ctx, http.MethodGet, "/visualization/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
