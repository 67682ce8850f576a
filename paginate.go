package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// PageRequest describes the first page of a paginated listing.
type PageRequest struct {
	Method  string
	Target  string
	Body    []byte
	Headers map[string]string
	// Items is the JSON path of the item array; empty when the body itself
	// is the array.
	Items string
	// Pager overrides the client's pager for this listing.
	Pager Pager
}

// FetchOne returns the items of the first page only. Any continuation cursor
// is ignored and exactly one request is made.
func FetchOne[T any](ctx context.Context, c *Client, req PageRequest) ([]T, error) {
	_, items, err := fetchPage[T](ctx, c, req, req.Target)
	return items, err
}

// FetchAll requests pages one after another, following the continuation
// cursor until a page carries none, and returns all items in server order.
// A failure on any page discards everything fetched so far. A listing with
// no items returns an empty, non-nil slice. A continuation pointing at a
// different scheme or host than the base URL fails with [ErrCrossOriginLink]
// so that credentials are never sent elsewhere.
func FetchAll[T any](ctx context.Context, c *Client, req PageRequest) ([]T, error) {
	if c == nil {
		return nil, errNilClient
	}

	pager := req.Pager
	if pager == nil {
		pager = c.options.pager
	}

	all := []T{}
	target := req.Target

	for page := 1; ; page++ {
		resp, items, err := fetchPage[T](ctx, c, req, target)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		next, ok, err := pager.Next(target, resp)
		if err != nil {
			return nil, err
		}

		if !ok {
			return all, nil
		}

		if err := c.checkOrigin(next); err != nil {
			return nil, err
		}

		c.options.requestLogger.Debugf("%s %s: fetching page %d from %s", req.Method, req.Target, page+1, next)
		target = next
	}
}

func fetchPage[T any](ctx context.Context, c *Client, req PageRequest, target string) (*Response, []T, error) {
	resp, err := c.Do(ctx, req.Method, target, req.Body, req.Headers)
	if err != nil {
		return nil, nil, err
	}

	items, err := UnmarshalItems[T](resp.Body, req.Items)
	if err != nil {
		return nil, nil, err
	}

	return resp, items, nil
}

// checkOrigin rejects absolute targets outside the base URL's scheme and host.
func (c *Client) checkOrigin(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid page link %q: %w", target, err)
	}

	if !u.IsAbs() {
		return nil
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	if !strings.EqualFold(u.Scheme, base.Scheme) || !strings.EqualFold(u.Host, base.Host) {
		return fmt.Errorf("%w: %s://%s is not %s://%s", ErrCrossOriginLink, u.Scheme, u.Host, base.Scheme, base.Host)
	}

	return nil
}
