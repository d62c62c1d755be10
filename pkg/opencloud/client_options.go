// Copyright © 2018 One Concern

package opencloud

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the Open Cloud endpoint (defaults to DefaultBaseURL)
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.rawURL = u
		}
	}
}

// WithRetryMax sets the maximum number of retries on transient failures (defaults to 3)
func WithRetryMax(retries int) Option {
	return func(c *Client) {
		if retries >= 0 {
			c.http.RetryMax = retries
		}
	}
}

// WithRetryWait sets the bounds of the exponential backoff between retries
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		if minWait > 0 {
			c.http.RetryWaitMin = minWait
		}
		if maxWait > 0 {
			c.http.RetryWaitMax = maxWait
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http.HTTPClient = h
		}
	}
}

// WithLogger sets the logger used to trace requests and retries
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
