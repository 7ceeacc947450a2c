package books

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

// A ClientOpt configures a *Client when constructing it.
type ClientOpt func(*Client) error

// WithBaseURL sets the URL the book list is read from.
// FetchAll requests the URL with a trailing slash appended.
func WithBaseURL(raw string) ClientOpt {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidURL, err)
		}

		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
		}

		c.base = u
		return nil
	}
}

// WithHTTPClient sets the *http.Client requests are made with.
//
// Apply WithHTTPClient ahead of WithTimeout and WithTokenSource,
// since both alter the *http.Client in use.
func WithHTTPClient(hc *http.Client) ClientOpt {
	return func(c *Client) error {
		if hc == nil {
			return nil
		}

		cp := *hc
		c.hc = &cp
		return nil
	}
}

// WithTimeout bounds how long a single FetchAll may take.
// A non-positive timeout leaves the request unbounded but for its context.
func WithTimeout(d time.Duration) ClientOpt {
	return func(c *Client) error {
		if d > 0 {
			c.hc.Timeout = d
		}

		return nil
	}
}

// WithTokenSource attaches the tokens ts hands out to every request
// in the "Authorization" header.
//
// If ts is nil, requests go out without credentials.
func WithTokenSource(ts oauth2.TokenSource) ClientOpt {
	return func(c *Client) error {
		if ts == nil {
			return nil
		}

		base := c.hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}

		c.hc.Transport = &oauth2.Transport{Source: oauth2.ReuseTokenSource(nil, ts), Base: base}
		return nil
	}
}

// WithToken is WithTokenSource for a fixed bearer token.
// An empty token leaves requests without credentials.
func WithToken(token string) ClientOpt {
	if token == "" {
		return WithTokenSource(nil)
	}

	return WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}
