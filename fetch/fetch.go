// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package fetch retrieves GitHub user activity listings.
//
// A Client fetches the raw text of the "list events for a user" endpoint
// and hands it to the ghactivity parser. The GitHub client library is used
// for transport, authentication, pagination and error reporting; it does not
// decode the event bodies.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/creachadair/ghactivity"
	"github.com/google/go-github/v66/github"
	"go4.org/mem"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the root of the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com/"

// DefaultUserAgent is sent with requests if Config.UserAgent is empty.
// GitHub rejects requests that do not carry a User-Agent.
const DefaultUserAgent = "ghactivity/1.0"

// maxPerPage is the largest page size GitHub will honor for event listings.
const maxPerPage = 100

// Config carries settings for a Client. The zero value is ready for use and
// fetches one page of public events without authentication.
type Config struct {
	// BaseURL is the root URL for API requests. If empty, DefaultBaseURL.
	BaseURL string

	// Token, if set, is sent as a bearer token with each request.
	// Unauthenticated requests are subject to a much lower rate limit.
	Token string

	// UserAgent, if set, replaces DefaultUserAgent.
	UserAgent string

	// PublicOnly restricts the listing to public events, even when the
	// token would permit private events to be listed.
	PublicOnly bool

	// PerPage is the number of events requested per page. If zero, the
	// server default is used. Values above 100 are clamped.
	PerPage int

	// Pages is the maximum number of pages to fetch. If zero, 1.
	Pages int

	// HTTPClient is used for requests. If nil, http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives debug and warning logs. If nil, slog.Default().
	Logger *slog.Logger

	// Retry controls retries of transient failures.
	Retry RetryConfig
}

// A Client fetches GitHub activity listings.
type Client struct {
	gh         *github.Client
	publicOnly bool
	perPage    int
	pages      int
	retry      RetryConfig
	log        *slog.Logger
}

// New constructs a Client from cfg. The context governs only the setup of
// authentication, not later requests.
func New(ctx context.Context, cfg Config) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	} else if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: unsupported scheme", base)
	}

	hc := cfg.HTTPClient
	if cfg.Token != "" {
		if hc != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, hc)
		}
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
	}
	gh := github.NewClient(hc)
	gh.BaseURL = baseURL
	gh.UserAgent = cfg.UserAgent
	if gh.UserAgent == "" {
		gh.UserAgent = DefaultUserAgent
	}

	c := &Client{
		gh:         gh,
		publicOnly: cfg.PublicOnly,
		perPage:    min(max(cfg.PerPage, 0), maxPerPage),
		pages:      max(cfg.Pages, 1),
		retry:      cfg.Retry.withDefaults(),
		log:        cfg.Logger,
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c, nil
}

// FetchPage fetches the raw text of one page of the event listing for user.
// Pages are numbered from 1. It returns the response body and the number of
// the next page, or 0 if there are no more pages.
func (c *Client) FetchPage(ctx context.Context, user string, page int) ([]byte, int, error) {
	path := "users/" + url.PathEscape(user) + "/events"
	if c.publicOnly {
		path += "/public"
	}
	q := make(url.Values)
	if page > 1 {
		q.Set("page", fmt.Sprint(page))
	}
	if c.perPage > 0 {
		q.Set("per_page", fmt.Sprint(c.perPage))
	}
	if len(q) != 0 {
		path += "?" + q.Encode()
	}

	var buf bytes.Buffer
	var rsp *github.Response
	err := c.withRetry(ctx, func() error {
		buf.Reset()
		req, err := c.gh.NewRequest(http.MethodGet, path, nil)
		if err != nil {
			return err
		}
		rsp, err = c.gh.Do(ctx, req, &buf)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("fetch events for %q: %w", user, err)
	}
	return buf.Bytes(), rsp.NextPage, nil
}

// Events fetches and parses the activity listing for user, following
// pagination up to the configured page limit. The username is checked with
// ValidateUsername before any request is made.
func (c *Client) Events(ctx context.Context, user string) ([]ghactivity.Event, error) {
	if err := ValidateUsername(user); err != nil {
		return nil, err
	}
	var page int
	p := ghactivity.Parser{Skipped: func(obj ghactivity.View, err error) {
		c.log.Debug("skipped malformed event", "page", page, "offset", obj.Pos, "error", err)
	}}

	var all []ghactivity.Event
	page = 1
	for n := 0; n < c.pages && page != 0; n++ {
		body, next, err := c.FetchPage(ctx, user, page)
		if err != nil {
			return nil, err
		}
		evts, err := p.Parse(mem.B(body))
		if err != nil {
			return nil, fmt.Errorf("parse events page %d: %w", page, err)
		}
		c.log.Debug("fetched events", "user", user, "page", page, "bytes", len(body), "events", len(evts))
		all = append(all, evts...)
		page = next
	}
	return all, nil
}
