package client

import (
	"errors"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Option func(*Options)

type Options struct {
	requestLogger     RequestLogger
	requestHeaders    map[string]string
	basicAuthUsername string
	basicAuthPassword string
	authScheme        string
	authToken         string
	requestIDHeader   string
	pager             Pager
	responseCheck     func(*Response) error
	httpClient        *http.Client
	tracerProvider    trace.TracerProvider
	meterProvider     metric.MeterProvider
}

func newClientOptions() *Options {
	return &Options{
		requestLogger: &NoopLogger{},
		pager:         LinkHeaderPager{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

func (o *Options) Validate() error {
	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.pager == nil {
		return errors.New("pager must not be nil")
	}

	if o.basicAuthUsername != "" && o.authToken != "" {
		return errors.New("cannot use both basic auth and token auth - choose one")
	}

	return nil
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		if userAgent = strings.TrimSpace(userAgent); userAgent != "" {
			o.requestHeaders["User-Agent"] = userAgent
		}
	}
}

func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.basicAuthUsername = username
		o.basicAuthPassword = password
	}
}

func WithAuthScheme(scheme string) Option {
	return func(o *Options) {
		o.authScheme = scheme
	}
}

func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}

// WithRequestIDHeader stamps every request with a random UUID in the given
// header unless the caller already set one.
func WithRequestIDHeader(header string) Option {
	return func(o *Options) {
		o.requestIDHeader = strings.TrimSpace(header)
	}
}

// WithPager sets how [FetchAll] finds the continuation cursor of a page.
// The default is [LinkHeaderPager].
func WithPager(pager Pager) Option {
	return func(o *Options) {
		if pager != nil {
			o.pager = pager
		}
	}
}

// WithResponseCheck installs a function that inspects every 2xx response.
// A non-nil error from check fails the call. APIs that report errors inside
// a successful status (such as Slack's "ok": false) use this.
func WithResponseCheck(check func(*Response) error) Option {
	return func(o *Options) {
		o.responseCheck = check
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. to set a
// transport or timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithTracerProvider sets where request spans are recorded. The default is
// the global OpenTelemetry provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *Options) {
		if provider != nil {
			o.tracerProvider = provider
		}
	}
}

// WithMeterProvider sets where request metrics are recorded. The default is
// the global OpenTelemetry provider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *Options) {
		if provider != nil {
			o.meterProvider = provider
		}
	}
}
