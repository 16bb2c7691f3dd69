package nlrb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"nlrbdata/lib/restyutil"
	"nlrbdata/lib/telemetry"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultBaseUrl   = "https://www.nlrb.gov"
	DefaultDelay     = time.Second
	DefaultTimeout   = time.Second * 30
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// ErrMissingElement is returned when a page lacks markup the parser
// cannot do without.
var ErrMissingElement = errors.New("missing element")

type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Url, e.StatusCode)
}

type ClientOptions struct {
	BaseUrl string
	// Http is the session every request goes through. It is owned by the
	// caller and may be shared between clients used one at a time.
	// A new instrumented session is created when nil.
	Http *resty.Client
	// Delay is slept after every fetch, failed or not. Zero means DefaultDelay.
	Delay time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)

	// the fields below only apply when Http is nil
	Timeout          time.Duration
	UserAgent        string
	CloudflareBypass bool
	// Dump receives raw request/response pairs while debug logging is on.
	Dump restyutil.InstrumentOutput
}

// Client is not safe for concurrent use.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
	Delay   time.Duration
	sleep   func(time.Duration)
}

func newSession(opts ClientOptions) *resty.Client {
	session := resty.New()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	session.SetTimeout(timeout)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	session.SetHeader("user-agent", userAgent)

	if opts.CloudflareBypass {
		session.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(session.GetClient().Transport)
	}

	telemetry.InstrumentResty(session, "nlrbdata.lib.scrapers.nlrb/http")
	restyutil.InstrumentClient(session, opts.Dump)
	return session
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}
	if baseUrl.Scheme == "" || baseUrl.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseUrl)
	}

	session := opts.Http
	if session == nil {
		session = newSession(opts)
	}

	delay := opts.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	return &Client{
		BaseUrl: baseUrl,
		Http:    session,
		Delay:   delay,
		sleep:   sleep,
	}, nil
}

func (c *Client) baseUrl() string {
	return c.BaseUrl.String()
}

// Fetch GETs `link` and returns the response body, then sleeps for the
// client's delay regardless of the outcome.
func (c *Client) Fetch(ctx context.Context, link string) (string, error) {
	defer c.sleep(c.Delay)

	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return "", fmt.Errorf("fetch %s: %w", link, err)
	}
	if !res.IsSuccess() {
		err := &StatusError{Url: link, StatusCode: res.StatusCode()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return "", err
	}

	pagesFetched.Add(ctx, 1)
	return res.String(), nil
}
