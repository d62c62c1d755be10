// Copyright © 2018 One Concern

// Package opencloud is a client for the Roblox Open Cloud APIs used by rit:
// standard datastores, messaging service and place publishing.
//
// Transient failures (connection errors, 429 and 5xx responses) are retried with
// an exponential backoff, except for non-idempotent operations.
// Error responses are qualified by the sentinel errors of the status package.
package opencloud

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/rit/pkg/opencloud/status"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Open Cloud endpoint
	DefaultBaseURL = "https://apis.roblox.com"

	apiKeyHeader = "x-api-key"

	defaultRetryMax = 3
	defaultTimeout  = 30 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type noRetryKey struct{}

// withoutRetry marks a context so that the request it carries is never retried
func withoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if noRetry, _ := ctx.Value(noRetryKey{}).(bool); noRetry {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Client to the Open Cloud APIs, authenticated by an API key
type Client struct {
	rawURL    string
	baseURL   *url.URL
	apiKey    string
	userAgent string
	http      *retryablehttp.Client
	logger    *zap.Logger
}

// New builds a client authenticated with the API key
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("opencloud: API key is required")
	}

	h := retryablehttp.NewClient()
	h.RetryMax = defaultRetryMax
	h.HTTPClient.Timeout = defaultTimeout
	h.CheckRetry = checkRetry
	h.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		rawURL: DefaultBaseURL,
		apiKey: apiKey,
		http:   h,
		logger: zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}

	u, err := url.Parse(c.rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "opencloud: invalid base URL %q", c.rawURL)
	}
	c.baseURL = u
	c.http.Logger = leveledLogger{l: c.logger.Sugar()}
	return c, nil
}

type request struct {
	method string
	path   string
	query  interface{}
	header http.Header
	body   []byte
}

func (c *Client) endpoint(pth string, q interface{}) (string, error) {
	u := *c.baseURL
	u.Path = path.Join(u.Path, pth)
	if q != nil {
		values, err := query.Values(q)
		if err != nil {
			return "", errors.Wrap(err, "opencloud: encode query")
		}
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}

// do carries out a request. The caller must close the body of the returned response.
func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	endpoint, err := c.endpoint(r.path, r.query)
	if err != nil {
		return nil, err
	}

	var body interface{}
	if r.body != nil {
		body = r.body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "opencloud: build request")
	}
	for k, values := range r.header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("open cloud request", zap.String("method", r.method), zap.String("path", r.path))
	resp, err := c.http.Do(req)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, status.ErrTransport.Wrap(err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		err := toSentinelError(resp)
		c.logger.Debug("open cloud error", zap.String("path", r.path), zap.Error(err))
		return nil, err
	}
	return resp, nil
}

// doJSON carries out a request and decodes the JSON response into target
func (c *Client) doJSON(ctx context.Context, r request, target interface{}) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return status.ErrUnexpectedResponse.Wrap(errors.Wrapf(err, "decode %s", r.path))
	}
	return nil
}

// doRaw carries out a request and returns the raw response
func (c *Client) doRaw(ctx context.Context, r request) ([]byte, http.Header, error) {
	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, status.ErrTransport.Wrap(errors.Wrapf(err, "read %s", r.path))
	}
	return b, resp.Header, nil
}

// leveledLogger adapts zap to the retryablehttp logging interface
type leveledLogger struct {
	l *zap.SugaredLogger
}

func (z leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	z.l.Errorw(msg, keysAndValues...)
}

func (z leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	z.l.Debugw(msg, keysAndValues...)
}

func (z leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	z.l.Debugw(msg, keysAndValues...)
}

func (z leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	z.l.Warnw(msg, keysAndValues...)
}
