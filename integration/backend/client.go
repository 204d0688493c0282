package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/outcome"
)

// maxBodySize caps how much of an upstream body is read.
const maxBodySize = 4 << 20

// ErrInvalidBaseURL is returned by New for unusable base URLs.
var ErrInvalidBaseURL = errors.New("invalid backend base URL")

// Client talks to the content analysis API.
// Every method error is an *outcome.Error.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger for upstream failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a client for cfg.BaseURL.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, base)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	c := &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: timeout},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login checks credentials: POST {base}/users/login.
func (c *Client) Login(ctx context.Context, creds Credentials) (User, error) {
	var user User
	err := c.do(ctx, outcome.Login, http.MethodPost, "/users/login", nil, creds, &user, func() error { return user.validate() })
	return user, err
}

// Register creates an account: POST {base}/users.
func (c *Client) Register(ctx context.Context, creds Credentials) (User, error) {
	var user User
	err := c.do(ctx, outcome.Register, http.MethodPost, "/users", nil, creds, &user, func() error { return user.validate() })
	return user, err
}

// Analyze asks the upstream to parse an article for userID:
// POST {base}/{user}/news-contents/parse-news-url?news_url=...
func (c *Client) Analyze(ctx context.Context, userID, newsURL string) (NewsContent, error) {
	var content NewsContent
	path := "/" + url.PathEscape(userID) + "/news-contents/parse-news-url"
	query := url.Values{"news_url": {newsURL}}
	err := c.do(ctx, outcome.Proxy, http.MethodPost, path, query, nil, &content, func() error { return content.validate() })
	return content, err
}

// History lists the articles userID analyzed: GET {base}/users/{user}/history.
// A null body is an empty history.
func (c *Client) History(ctx context.Context, userID string) ([]NewsContent, error) {
	var history []NewsContent
	path := "/users/" + url.PathEscape(userID) + "/history"
	err := c.do(ctx, outcome.Proxy, http.MethodGet, path, nil, nil, &history, nil)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []NewsContent{}
	}
	return history, nil
}

// SummarizerEndpoint is the streaming summary URL the browser subscribes to
// for one analyzed article.
func (c *Client) SummarizerEndpoint(userID, contentID string) string {
	return c.base + "/" + url.PathEscape(userID) +
		"/news_contents/summarize-news-content-stream?" +
		url.Values{"news_content_id": {contentID}}.Encode()
}

// Ping reports whether the upstream answers HTTP at all. Any status counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(outcome.ErrTransport, err)
	}
	_ = resp.Body.Close()
	return nil
}

// do performs one upstream call and classifies it. out is decoded only for
// 200 OK; validate runs after a successful decode.
func (c *Client) do(
	ctx context.Context,
	op outcome.Operation,
	method, path string,
	query url.Values,
	body any,
	out any,
	validate func() error,
) error {
	res := outcome.Result{Op: op}
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return outcome.New(outcome.InternalFailure, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return outcome.New(outcome.InternalFailure, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		res.TransportErr = err
	} else {
		defer resp.Body.Close()
		res.Status = resp.StatusCode
		if resp.StatusCode == http.StatusOK {
			res.DecodeErr = decode(resp.Body, out, validate)
		}
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	}

	if failure := outcome.Classify(res); failure != nil {
		c.logger.WarnContext(ctx, "upstream call failed",
			logger.Upstream(op.String()),
			logger.Method(method),
			logger.Path(path),
			logger.StatusCode(res.Status),
			logger.Category(failure.Category),
			logger.Duration(time.Since(start)),
			logger.Error(failure),
		)
		return failure
	}
	return nil
}

func decode(r io.Reader, out any, validate func() error) error {
	if err := json.NewDecoder(io.LimitReader(r, maxBodySize)).Decode(out); err != nil {
		return err
	}
	if validate != nil {
		return validate()
	}
	return nil
}
