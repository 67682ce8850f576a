package client

import "context"

// NoContent is the result type of endpoints that return no body.
type NoContent struct{}

// Call holds the inputs of one endpoint invocation.
type Call struct {
	// PathParams fill the path placeholders in order.
	PathParams []string
	// Query is a struct encoded with [EncodeQuery]; nil for none.
	Query any
	// Body is encoded with [Marshal]; nil for none.
	Body any
	// Headers are sent with this call only.
	Headers map[string]string
}

func (call Call) target(path string) (string, error) {
	target, err := ExpandPath(path, call.PathParams...)
	if err != nil {
		return "", err
	}

	return AppendQuery(target, call.Query)
}

// Endpoint describes a REST operation whose response decodes into R.
type Endpoint[R any] struct {
	Method string
	// Path is the path template, with {name} placeholders.
	Path string
}

// Do builds the request for call, sends it and decodes the response.
// Encoding problems are reported before any request is made.
func (e Endpoint[R]) Do(ctx context.Context, c *Client, call Call) (R, error) {
	var zero R

	target, err := call.target(e.Path)
	if err != nil {
		return zero, err
	}

	body, err := Marshal(call.Body)
	if err != nil {
		return zero, err
	}

	resp, err := c.Do(ctx, e.Method, target, body, call.Headers)
	if err != nil {
		return zero, err
	}

	return Unmarshal[R](resp.Body)
}

// ListEndpoint describes a paginated REST operation returning items of T.
type ListEndpoint[T any] struct {
	Method string
	Path   string
	// Items is the JSON path of the item array; empty for a top-level array.
	Items string
	// Pager overrides the client's pager.
	Pager Pager
}

// One returns the first page of results.
func (e ListEndpoint[T]) One(ctx context.Context, c *Client, call Call) ([]T, error) {
	req, err := e.request(call)
	if err != nil {
		return nil, err
	}

	return FetchOne[T](ctx, c, req)
}

// All returns the results of every page.
func (e ListEndpoint[T]) All(ctx context.Context, c *Client, call Call) ([]T, error) {
	req, err := e.request(call)
	if err != nil {
		return nil, err
	}

	return FetchAll[T](ctx, c, req)
}

func (e ListEndpoint[T]) request(call Call) (PageRequest, error) {
	target, err := call.target(e.Path)
	if err != nil {
		return PageRequest{}, err
	}

	body, err := Marshal(call.Body)
	if err != nil {
		return PageRequest{}, err
	}

	return PageRequest{
		Method:  e.Method,
		Target:  target,
		Body:    body,
		Headers: call.Headers,
		Items:   e.Items,
		Pager:   e.Pager,
	}, nil
}
