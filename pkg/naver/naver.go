// Package naver talks to the two Naver Map endpoints the resolver depends on:
// the naver.me short-link redirector and the place summary API.
package naver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/codingsince1985/geo-golang"

	"github.com/manzanit0/naver2google/pkg/whttp"
)

const (
	DefaultPlaceAPI = "https://map.naver.com/p/api/place/summary"
	DefaultTimeout  = 10 * time.Second
	MaxRedirects    = 10

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://map.naver.com/"
)

// ErrLookupUnavailable is returned for any failure to get usable data out of
// Naver: transport errors, non-2xx statuses, malformed or incomplete bodies.
var ErrLookupUnavailable = errors.New("naver lookup unavailable")

type Client interface {
	FollowShortLink(ctx context.Context, shortURL string) (string, error)
	PlaceSummary(ctx context.Context, placeID string) (*Place, error)
}

// Place is the subset of a place summary the resolver cares about.
type Place struct {
	Coordinates geo.Location
	Name        string
}

type ClientOption func(*client)

func PlaceAPIOption(baseURL string) ClientOption {
	return func(c *client) {
		c.placeAPI = baseURL
	}
}

func TimeoutOption(timeout time.Duration) ClientOption {
	return func(c *client) {
		c.timeout = timeout
	}
}

func DebugOption(debug bool) ClientOption {
	return func(c *client) {
		c.debug = debug
	}
}

type client struct {
	h        *http.Client
	placeAPI string
	timeout  time.Duration
	debug    bool
}

var _ Client = (*client)(nil)

func NewClient(opts ...ClientOption) Client {
	c := &client{placeAPI: DefaultPlaceAPI, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}

	c.h = whttp.NewLoggingClient(c.timeout, c.debug)

	return c
}

func setBrowserHeaders(r *http.Request) {
	r.Header.Set("User-Agent", userAgent)
	r.Header.Set("Referer", referer)
}
