// Package client provides the shared HTTP machinery behind the typed API
// clients in this module (the gusto, okta and slack packages).
//
// The client wraps [github.com/go-resty/resty/v2] with a fixed base URL and
// credential, typed JSON encoding and decoding, and pagination.
//
// # Basic Usage
//
//	c, err := client.New("https://api.example.com",
//	    client.WithAuthScheme("Bearer"),
//	    client.WithAuthToken("my-token"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var getWidget = client.Endpoint[*Widget]{Method: http.MethodGet, Path: "/widgets/{id}"}
//
//	w, err := getWidget.Do(ctx, c, client.Call{PathParams: []string{"w/1"}})
//
// # Endpoints
//
// An [Endpoint] or [ListEndpoint] is a declarative description of one REST
// operation: verb, path template and result type. Per-call inputs go in a
// [Call]: path parameters are percent-encoded, the query struct is encoded
// with [EncodeQuery] and the body with [Marshal].
//
// # Optional Parameters
//
// Optional query parameters are pointer fields tagged `url:"name,omitempty"`.
// A nil pointer is never sent; a pointer to a zero value is sent as is. Use
// [Ptr] to set one.
//
// # Pagination
//
// [FetchAll] and [ListEndpoint.All] follow the continuation cursor found by
// the client's [Pager] and return the items of every page. [FetchOne] and
// [ListEndpoint.One] stop after the first page. Pages are fetched one at a
// time; an error on any page fails the whole listing. Continuation links to
// another scheme or host than the base URL are refused with
// [ErrCrossOriginLink].
//
// # Errors
//
// Calls fail with a [TransportError] when no response was received, an
// [HTTPStatusError] for non-2xx responses, a [DecodeError] when the body does
// not match the result type, and an [EncodeError] when the request could not
// be built. Nothing is retried.
//
// # Authentication
//
// Token-based authentication is configured with [WithAuthToken] (and
// optionally [WithAuthScheme]). HTTP Basic authentication is configured
// with [WithBasicAuth]. The two methods are mutually exclusive.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library; a *zap.SugaredLogger can be passed
// directly. The default [NoopLogger] discards all log output.
//
// # Tracing and Metrics
//
// Every request is recorded as an OpenTelemetry client span and counted in
// the api_client.requests and api_client.request.duration instruments. The
// W3C trace context is propagated in the traceparent header. Providers
// default to the global ones; override them with [WithTracerProvider] and
// [WithMeterProvider].
package client
