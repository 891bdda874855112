package hibp

import (
	"checkmypass/config"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Fetcher queries the range endpoint. It is safe to reuse across lookups;
// the only state it keeps is the pooled HTTP client.
type Fetcher struct {
	client    *retryablehttp.Client
	baseURL   string
	userAgent string
	mode      Mode
	padding   bool
	log       *zap.Logger
}

type Option func(*Fetcher)

// WithBaseURL sets the URL the prefix is appended to.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) { f.baseURL = u }
}

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.HTTPClient.Timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

func WithMode(m Mode) Option {
	return func(f *Fetcher) { f.mode = m }
}

// WithPadding asks the service to pad responses with zero-count records.
func WithPadding(padding bool) Option {
	return func(f *Fetcher) { f.padding = padding }
}

func WithLogger(log *zap.Logger) Option {
	return func(f *Fetcher) { f.log = log }
}

func NewFetcher(opts ...Option) *Fetcher {
	// Single attempt: no retry, and non-2xx responses are handed back as-is
	// so the status code can be reported.
	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.HTTPClient.Timeout = config.HTTP_CLIENT_TIMEOUT
	client.RetryMax = 0
	client.Logger = nil
	client.CheckRetry = noRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	f := &Fetcher{
		client:    client,
		baseURL:   config.RANGE_API_URL,
		userAgent: config.HTTP_CLIENT_USER_AGENT,
		mode:      ModeSHA1,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	return f
}

func noRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}

func (f *Fetcher) Mode() Mode { return f.mode }

func (f *Fetcher) Padding() bool { return f.padding }

// Fetch issues one GET for prefix and returns the raw response body. prefix
// is trusted to come from Split.
func (f *Fetcher) Fetch(ctx context.Context, prefix string) (string, error) {
	url := f.baseURL + prefix
	if f.mode == ModeNTLM {
		url += "?mode=ntlm"
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{Prefix: prefix, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	if f.padding {
		req.Header.Set(config.PADDING_HEADER, "true")
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Debug("range request failed", zap.String("prefix", prefix), zap.Error(err))
		return "", &TransportError{Prefix: prefix, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn("unexpected range response status",
			zap.String("prefix", prefix),
			zap.Int("status", resp.StatusCode))
		return "", &RemoteServiceError{Prefix: prefix, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Prefix: prefix, Err: err}
	}
	f.log.Debug("range response received",
		zap.String("prefix", prefix),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))
	return string(body), nil
}
