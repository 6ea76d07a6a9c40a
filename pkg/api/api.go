// Package api is the HTTP client for the boolco JSON endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sgaunet/boolco/internal/logger"
	"github.com/sgaunet/boolco/internal/security"
	"github.com/sgaunet/boolco/internal/textutil"
	"github.com/sgaunet/boolco/internal/urlutil"
	"github.com/sgaunet/bullets"
)

// Options configures a [Client].
type Options struct {
	BaseURL string
	Session security.SecureToken
	// Timeout bounds each attempt. Zero means no timeout.
	Timeout time.Duration
	// Retries is how many extra attempts an idempotent request gets.
	Retries int
	// RetryWaitMin and RetryWaitMax bound the backoff between attempts.
	// Zero values use the defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Logger       *bullets.Logger
}

// Client talks to one boolco server.
type Client struct {
	// http retries idempotent requests; once sends everything else a
	// single time since a timed out POST may already have been applied.
	http    *retryablehttp.Client
	once    *retryablehttp.Client
	base    *url.URL
	session security.SecureToken
	log     *bullets.Logger
}

// NewClient creates a client for opts.BaseURL.
func NewClient(opts Options) (*Client, error) {
	base, err := urlutil.ParseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	if opts.Retries < 0 {
		return nil, fmt.Errorf("%w: negative retries", errClientConfig)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NoLogger()
	}

	c := &Client{
		base:    base,
		session: opts.Session,
		log:     log,
	}
	c.http = c.newHTTPClient(opts, opts.Retries)
	c.once = c.newHTTPClient(opts, 0)

	return c, nil
}

func (c *Client) newHTTPClient(opts Options, retries int) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = retries
	rc.RetryWaitMin = defaultRetryWaitMin
	rc.RetryWaitMax = defaultRetryWaitMax
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	rc.HTTPClient.Timeout = opts.Timeout
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = c.logRequest
	rc.ResponseLogHook = c.logResponse
	return rc
}

// SetLogger replaces the logger used for request tracing.
func (c *Client) SetLogger(log *bullets.Logger) {
	if log == nil {
		log = logger.NoLogger()
	}
	c.log = log
}

// ListMessages returns the message board, newest first.
func (c *Client) ListMessages(ctx context.Context) ([]Message, error) {
	var resp messagesResponse
	if err := c.do(ctx, http.MethodGet, urlutil.Endpoint(c.base, pathGame), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if resp.Messages == nil {
		return nil, fmt.Errorf("failed to list messages: %w: missing messages", ErrInvalidResponse)
	}

	c.log.Debug(fmt.Sprintf("Messages retrieved, count: %d", len(*resp.Messages)))
	return *resp.Messages, nil
}

// PostMessage adds a message to the board. name must be 1 to 40 characters
// and content 1 to 1000 characters.
func (c *Client) PostMessage(ctx context.Context, name, content string) (string, error) {
	if err := checkLength("name", name, MinMessageNameLength, MaxMessageNameLength); err != nil {
		return "", err
	}
	if err := checkLength("content", content, MinMessageContentLength, MaxMessageContentLength); err != nil {
		return "", err
	}

	var resp successResponse
	body := postMessageRequest{Name: name, Content: content}
	if err := c.do(ctx, http.MethodPost, urlutil.Endpoint(c.base, pathGame), body, &resp); err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	if resp.Success == nil {
		return "", fmt.Errorf("failed to post message: %w: missing success", ErrInvalidResponse)
	}

	return rawText(*resp.Success), nil
}

// LookupNames returns the names hidden in name. name must be 3 to 50 characters.
func (c *Client) LookupNames(ctx context.Context, name string) ([]string, error) {
	if err := checkLength("name", name, MinLookupNameLength, MaxLookupNameLength); err != nil {
		return nil, err
	}

	var resp namesResponse
	if err := c.do(ctx, http.MethodGet, urlutil.Endpoint(c.base, pathDiscord, name), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to look up names: %w", err)
	}
	if resp.Names == nil {
		return nil, fmt.Errorf("failed to look up names: %w: missing names", ErrInvalidResponse)
	}

	return *resp.Names, nil
}

// GenerateRegistrationToken asks the server for a one-time registration token.
func (c *Client) GenerateRegistrationToken(ctx context.Context) (security.SecureToken, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, urlutil.Endpoint(c.base, pathRegistrationToken), nil, &resp); err != nil {
		return security.SecureToken{}, fmt.Errorf("failed to generate registration token: %w", err)
	}
	if resp.Token == nil {
		return security.SecureToken{}, fmt.Errorf("failed to generate registration token: %w: missing token", ErrInvalidResponse)
	}

	token := security.NewSecureToken("token", *resp.Token)
	c.log.Debug(fmt.Sprintf("Registration token generated: %s", token))
	return token, nil
}

// ListLinks returns the short links of the session's user.
func (c *Client) ListLinks(ctx context.Context) ([]Link, error) {
	var resp linksResponse
	if err := c.do(ctx, http.MethodGet, urlutil.Endpoint(c.base, pathShort), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	if resp.Links == nil {
		return nil, fmt.Errorf("failed to list links: %w: missing links", ErrInvalidResponse)
	}

	c.log.Debug(fmt.Sprintf("Links retrieved, count: %d", len(*resp.Links)))
	return *resp.Links, nil
}

// CreateLink shortens link and returns its mnemonic. The link is trimmed
// and must start with http:// or https://.
func (c *Client) CreateLink(ctx context.Context, link string) (string, error) {
	normalized, err := urlutil.NormalizeLink(link)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var resp mnemonicResponse
	body := createLinkRequest{Link: normalized}
	if err := c.do(ctx, http.MethodPost, urlutil.Endpoint(c.base, pathShort), body, &resp); err != nil {
		return "", fmt.Errorf("failed to create link: %w", err)
	}
	if resp.Mnemonic == nil || *resp.Mnemonic == "" {
		return "", fmt.Errorf("failed to create link: %w: missing mnemonic", ErrInvalidResponse)
	}

	return *resp.Mnemonic, nil
}

// ShortURL is the public address of a mnemonic on this server.
func (c *Client) ShortURL(mnemonic string) string {
	return urlutil.ShortLinkURL(c.base, mnemonic)
}

// do sends one request and decodes the JSON answer into out. Any body with
// an "error" key becomes an *APIError whatever the status code.
func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body any
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = data
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !c.session.IsEmpty() {
		req.AddCookie(&http.Cookie{Name: security.SessionCookieName, Value: c.session.Value()})
	}

	hc := c.once
	if method == http.MethodGet {
		hc = c.http
	}
	resp, err := hc.Do(req)
	if err != nil {
		return security.SanitizeError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	return decodeResponse(resp.StatusCode, data, out)
}

func decodeResponse(status int, data []byte, out any) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		if status >= http.StatusBadRequest {
			return &APIError{StatusCode: status}
		}
		return fmt.Errorf("%w: status %d: %w", ErrInvalidResponse, status, err)
	}
	if len(envelope.Error) > 0 {
		return &APIError{StatusCode: status, Message: rawText(envelope.Error)}
	}
	if status >= http.StatusBadRequest {
		return &APIError{StatusCode: status}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}

// rawText returns a JSON string's value, or the raw JSON for other kinds.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func checkLength(field, value string, minLen, maxLen int) error {
	n := textutil.Length(value)
	if n < minLen || n > maxLen {
		return fmt.Errorf("%w: %s must be between %d and %d characters, got %d", ErrInvalidInput, field, minLen, maxLen, n)
	}
	return nil
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.log.Debug(fmt.Sprintf("%s %s (attempt %d) %s",
		req.Method, security.SanitizeString(req.URL.String()), attempt+1, security.SanitizeHeaders(req.Header)))
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	c.log.Debug(fmt.Sprintf("%d %s from %s %s",
		resp.StatusCode, http.StatusText(resp.StatusCode), resp.Request.Method, security.SanitizeString(resp.Request.URL.String())))
}
