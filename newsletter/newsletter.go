// Package newsletter forwards email sign-ups to the Loops newsletter form.
package newsletter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://app.loops.so/api/newsletter-form/"

	// placeholderFormID ships in the sample .env and means "not configured"
	placeholderFormID = "your_loops_form_id_here"
)

type Client struct {
	formID  string
	baseURL string
	http    *retryablehttp.Client
	logger  *zap.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another form endpoint, e.g. a test server
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		c.baseURL = u
	}
}

func WithRetryMax(n int) Option {
	return func(c *Client) { c.http.RetryMax = n }
}

func New(formID string, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = leveled{logger.Sugar()}

	c := &Client{
		formID:  strings.TrimSpace(formID),
		baseURL: DefaultBaseURL,
		http:    rc,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Demo reports whether sign-ups are only logged
func (c *Client) Demo() bool {
	return c.formID == "" || c.formID == placeholderFormID
}

type formResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe submits email to the form. In demo mode it logs and succeeds.
func (c *Client) Subscribe(ctx context.Context, email, source string) error {
	if c.Demo() {
		c.logger.Info("email captured (demo mode)", zap.String("email", email), zap.String("source", source))
		return nil
	}

	body := "userGroup=&mailingLists=&email=" + url.QueryEscape(email)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+url.PathEscape(c.formID), strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("build newsletter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("newsletter request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var parsed formResponse
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 || parsed.Success {
		c.logger.Info("email captured", zap.String("source", source))
		return nil
	}

	msg := parsed.Message
	if msg == "" {
		msg = "failed to subscribe"
	}
	return fmt.Errorf("newsletter form returned %d: %s", resp.StatusCode, msg)
}

// leveled adapts zap to retryablehttp's LeveledLogger
type leveled struct {
	s *zap.SugaredLogger
}

func (l leveled) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveled) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l leveled) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveled) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
