package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the NeevaMind backend. One method per endpoint; the
// session cookie is carried by the jar, never passed by callers. Every
// failure comes back as *Error (or ErrUnauthenticated for auth/check).
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given server URL, e.g. "http://localhost:5000".
func New(serverURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/") + "/api",
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// CheckAuth performs the best-effort session probe. Any failure, transport
// or 401, reports ErrUnauthenticated: absence is expected here.
func (c *Client) CheckAuth(ctx context.Context) (*User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodGet, "auth/check", nil, &out, "Not authenticated"); err != nil {
		return nil, ErrUnauthenticated
	}
	return &out.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	in := map[string]string{"email": email, "password": password}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "auth/login", in, &out, "Login failed"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (*User, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var out userEnvelope
	if err := c.do(ctx, http.MethodPost, "auth/signup", in, &out, "Signup failed"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "auth/logout", nil, nil, "Logout failed")
}

func (c *Client) SubmitEntry(ctx context.Context, draft EntryDraft) error {
	return c.do(ctx, http.MethodPost, "diary/entry", draft, nil, "Failed to save entry")
}

func (c *Client) ListEntries(ctx context.Context) ([]DiaryEntry, error) {
	var out struct {
		Entries []DiaryEntry `json:"entries"`
	}
	if err := c.do(ctx, http.MethodGet, "diary/entries", nil, &out, "Failed to load entries"); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

func (c *Client) GenerateInsights(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "insights/generate", nil, nil, "Failed to generate insights")
}

func (c *Client) ListInsights(ctx context.Context) ([]Insight, error) {
	var out struct {
		Insights []Insight `json:"insights"`
	}
	if err := c.do(ctx, http.MethodGet, "insights", nil, &out, "Failed to load insights"); err != nil {
		return nil, err
	}
	return out.Insights, nil
}

func (c *Client) WeeklyReport(ctx context.Context) ([]DailyRecord, error) {
	var out struct {
		Report []DailyRecord `json:"report"`
	}
	if err := c.do(ctx, http.MethodGet, "insights/weekly-report", nil, &out, "Failed to load weekly report"); err != nil {
		return nil, err
	}
	return out.Report, nil
}

// Health pings the server and returns its reported status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "health", nil, &out, "Server unreachable"); err != nil {
		return "", err
	}
	return out.Status, nil
}

type userEnvelope struct {
	User User `json:"user"`
}

// do runs one request against the API. A non-2xx response is normalized
// into *Error carrying the server's message (or fallback when the body has
// none); transport failures and malformed responses are normalized the same
// way with a generic reason and the cause retained for logging. Mutating
// requests carry a fresh request ID so the server can dedup re-submissions.
func (c *Client) do(ctx context.Context, method, path string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return transportError(fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, body)
	if err != nil {
		return transportError(fmt.Errorf("create request: %w", err))
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rej struct {
			Message string `json:"message"`
		}
		reason := fallback
		if json.Unmarshal(data, &rej) == nil && rej.Message != "" {
			reason = rej.Message
		}
		return &Error{Reason: reason}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return transportError(fmt.Errorf("unmarshal response: %w", err))
		}
	}
	return nil
}
