// Package reddit fetches sentiment-bearing comments from the Reddit search API
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"sentimenttech/internal/platform/config"
	perr "sentimenttech/internal/platform/errors"
	"sentimenttech/internal/platform/logger"
	postsdom "sentimenttech/internal/services/posts/domain"
)

const (
	defaultBaseURL   = "https://www.reddit.com"
	defaultOAuthURL  = "https://oauth.reddit.com"
	defaultUserAgent = "sentimenttech/1.0"
	defaultLimit     = 25
)

// Options configures the Reddit client
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	UserAgent    string
	Subreddits   string
	Limit        int
	Timeout      time.Duration
}

// OptionsFromConfig reads REDDIT_* settings. Credentials are optional;
// without them the client uses the anonymous JSON listing endpoints
func OptionsFromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("REDDIT_")
	return Options{
		BaseURL:      c.MayString("BASE_URL", defaultBaseURL),
		ClientID:     c.MayString("CLIENT_ID", ""),
		ClientSecret: c.MayString("CLIENT_SECRET", ""),
		UserAgent:    c.MayString("USER_AGENT", defaultUserAgent),
		Subreddits:   c.MayString("SUBREDDITS", "wallstreetbets+stocks+investing"),
		Limit:        c.MayInt("LIMIT", defaultLimit),
		Timeout:      c.MayDuration("TIMEOUT", 30*time.Second),
	}
}

// Client implements the posts FetcherPort against Reddit
type Client struct {
	http *resty.Client
	opts Options
	now  func() time.Time

	mu      sync.Mutex
	token   string
	tokenAt time.Time
}

// Option mutates the client during construction
type Option func(*Client)

// WithClock overrides the instant used to derive relative comment ages
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Reddit client from the given options
func New(opts Options, copts ...Option) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = defaultLimit
	}

	http := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("User-Agent", opts.UserAgent)
	if opts.Timeout > 0 {
		http.SetTimeout(opts.Timeout)
	}

	c := &Client{http: http, opts: opts, now: time.Now}
	for _, o := range copts {
		o(c)
	}
	return c
}

// listing is the subset of the Reddit search response the adapter reads
type listing struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data struct {
				ID          string  `json:"id"`
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				Body        string  `json:"body"`
				Author      string  `json:"author"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
				CreatedUTC  float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// tokenResponse is the OAuth client-credentials grant payload
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// FetchComments searches the configured subreddits for cashtag mentions of
// ticker and maps each hit into the raw comment shape the normalizer expects
func (c *Client) FetchComments(ctx context.Context, ticker string) ([]postsdom.RawComment, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, perr.InvalidArgf("ticker cannot be empty")
	}

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", fmt.Sprintf("$%s subreddit:%s", ticker, c.opts.Subreddits)).
		SetQueryParam("sort", "new").
		SetQueryParam("t", "week").
		SetQueryParam("limit", fmt.Sprintf("%d", c.opts.Limit))

	if tok, err := c.accessToken(ctx); err != nil {
		return nil, err
	} else if tok != "" {
		req.SetHeader("Authorization", "Bearer "+tok)
	}

	resp, err := req.Get("/search.json")
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "reddit search request failed")
	}
	if err := statusErr(resp.StatusCode(), "reddit search"); err != nil {
		return nil, err
	}

	var page listing
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "reddit search returned malformed JSON")
	}

	at := c.now().UTC()
	out := make([]postsdom.RawComment, 0, len(page.Data.Children))
	for _, child := range page.Data.Children {
		d := child.Data
		content := d.Body
		if content == "" {
			content = strings.TrimSpace(d.Title + " " + d.Selftext)
		}
		if content == "" {
			continue
		}
		id := d.ID
		if id == "" {
			id = uuid.NewString()
		}
		upvotes, replies := d.Score, d.NumComments
		out = append(out, postsdom.RawComment{
			ID:      id,
			Author:  d.Author,
			Content: content,
			Upvotes: &upvotes,
			Replies: &replies,
			Time:    relAge(at, d.CreatedUTC),
			Source:  "reddit",
		})
	}

	logger.C(ctx).Debug().Str("ticker", ticker).Int("comments", len(out)).Msg("reddit search complete")
	return out, nil
}

// accessToken returns a cached bearer token, refreshing via the
// client-credentials grant when credentials are configured. Empty string
// with nil error means anonymous access
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.opts.ClientID == "" || c.opts.ClientSecret == "" {
		return "", nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Before(c.tokenAt) {
		return c.token, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.opts.ClientID, c.opts.ClientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post("/api/v1/access_token")
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "reddit token request failed")
	}
	if err := statusErr(resp.StatusCode(), "reddit token"); err != nil {
		return "", err
	}

	var tok tokenResponse
	if err := json.Unmarshal(resp.Body(), &tok); err != nil || tok.AccessToken == "" {
		return "", perr.Unavailablef("reddit token response malformed")
	}

	c.token = tok.AccessToken
	// renew a minute early
	c.tokenAt = c.now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return c.token, nil
}

func statusErr(code int, op string) error {
	switch {
	case code == 200:
		return nil
	case code == 401 || code == 403:
		return perr.Unauthorizedf("%s rejected with status %d", op, code)
	case code == 429:
		return perr.TooManyRequestsf("%s rate limited", op)
	default:
		return perr.Unavailablef("%s failed with status %d", op, code)
	}
}

// relAge renders a created_utc epoch as the whole-hours-ago form the
// normalizer parses, clamped at zero for clock skew
func relAge(at time.Time, createdUTC float64) string {
	created := time.Unix(int64(createdUTC), 0).UTC()
	hours := int(at.Sub(created).Hours())
	if hours < 0 {
		hours = 0
	}
	return fmt.Sprintf("%dh", hours)
}
