package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is where the library API serves its book list.
	DefaultBaseURL = "http://127.0.0.1:3000/library"

	// DefaultTimeout bounds a FetchAll made by a Client built without WithTimeout.
	DefaultTimeout = 30 * time.Second
)

// ErrInvalidURL reports a base URL without a scheme or host.
var ErrInvalidURL = errors.New("invalid library API URL")

// A Client reads the book list from the library API.
//
// A Client is safe for concurrent use.
type Client struct {
	base *url.URL
	hc   *http.Client
}

// NewClient constructs a *Client reading from DefaultBaseURL with DefaultTimeout,
// unless opts say otherwise.
func NewClient(opts ...ClientOpt) (*Client, error) {
	base, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		base: base,
		hc:   &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// URL returns the URL FetchAll requests: the base URL with a trailing slash.
func (c *Client) URL() string {
	u := *c.base
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return u.String()
}

// FetchAll retrieves every book title the library API lists, in the order it lists them.
//
// Transport failures and non-2xx responses return an error wrapping ErrRequestFailed,
// the latter as a *StatusError.
// A payload that is not a JSON array of strings returns an error wrapping ErrDecode.
func (c *Client) FetchAll(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: res.StatusCode, Status: res.Status}
	}

	var titles []string
	if err := json.NewDecoder(res.Body).Decode(&titles); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return titles, nil
}
