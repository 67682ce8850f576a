package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client issues authenticated JSON requests against a single API base URL.
// Its configuration is fixed by [New]; a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	options    *Options
	restClient *resty.Client
	telemetry  *telemetry
}

// Response is a completed HTTP exchange with the body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// New creates a client for baseURL. Options are validated here; an invalid
// combination is reported as an error.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	tel, err := newTelemetry(options, baseURL)
	if err != nil {
		return nil, err
	}

	var restClient *resty.Client
	if options.httpClient != nil {
		restClient = resty.NewWithClient(options.httpClient)
	} else {
		restClient = resty.New()
	}

	restClient.
		SetBaseURL(baseURL).
		SetHeaders(options.requestHeaders).
		SetLogger(options.requestLogger).
		SetRetryCount(0)

	switch {
	case options.basicAuthUsername != "":
		restClient.SetBasicAuth(options.basicAuthUsername, options.basicAuthPassword)
	case options.authToken != "":
		if options.authScheme != "" {
			restClient.SetAuthScheme(options.authScheme)
		}
		restClient.SetAuthToken(options.authToken)
	}

	if header := options.requestIDHeader; header != "" {
		restClient.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(header) == "" {
				r.SetHeader(header, uuid.NewString())
			}
			return nil
		})
	}

	return &Client{
		baseURL:    baseURL,
		options:    options,
		restClient: restClient,
		telemetry:  tel,
	}, nil
}

// BaseURL returns the URL that relative request targets are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one request. target is either a path relative to the base URL or
// an absolute URL. A non-2xx status returns both the response and an
// [HTTPStatusError]; a failure to reach the server returns a [TransportError].
func (c *Client) Do(ctx context.Context, method, target string, body []byte, headers map[string]string) (*Response, error) {
	if c == nil {
		return nil, errNilClient
	}

	req := c.restClient.R()

	if body != nil {
		req.SetBody(body)
	}

	for k, v := range headers {
		req.SetHeader(k, v)
	}

	ctx, span := c.telemetry.start(ctx, method, target, req.Header)
	started := time.Now()

	result, err := c.send(req.SetContext(ctx), method, target)

	status := 0
	if result != nil {
		status = result.StatusCode
	}
	c.telemetry.finish(ctx, span, method, status, err, time.Since(started))

	return result, err
}

func (c *Client) send(req *resty.Request, method, target string) (*Response, error) {
	resp, err := req.Execute(method, target)
	if err != nil {
		c.options.requestLogger.Errorf("%s %s failed: %v", method, target, err)
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}

	result := &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}

	if header := c.options.requestIDHeader; header != "" {
		c.options.requestLogger.Debugf("%s %s -> %d (%d bytes, %s %s)", method, target, result.StatusCode, len(result.Body), header, resp.Request.Header.Get(header))
	} else {
		c.options.requestLogger.Debugf("%s %s -> %d (%d bytes)", method, target, result.StatusCode, len(result.Body))
	}

	if !resp.IsSuccess() {
		return result, newHTTPStatusError(method, target, result.StatusCode, result.Body)
	}

	if c.options.responseCheck != nil {
		if err := c.options.responseCheck(result); err != nil {
			return result, err
		}
	}

	return result, nil
}
