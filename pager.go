package client

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tomnomnom/linkheader"
)

// Pager locates the continuation cursor in a page response.
type Pager interface {
	// Next returns the target of the page after resp, which was fetched from
	// current. ok is false when resp is the last page.
	Next(current string, resp *Response) (next string, ok bool, err error)
}

// LinkHeaderPager follows the rel="next" entry of the Link response header.
// [FetchAll] only follows links on the base URL's scheme and host.
type LinkHeaderPager struct{}

func (LinkHeaderPager) Next(_ string, resp *Response) (string, bool, error) {
	for _, link := range linkheader.ParseMultiple(resp.Header.Values("Link")).FilterByRel("next") {
		if link.URL != "" {
			return link.URL, true, nil
		}
	}

	return "", false, nil
}

// CursorPager reads an opaque token from a JSON body field and sends it back
// in a query parameter. An empty or missing token ends the listing.
type CursorPager struct {
	// Field is the JSON path of the token, e.g. "response_metadata.next_cursor".
	Field string
	// Param is the query parameter that carries the token, e.g. "cursor".
	Param string
}

func (p CursorPager) Next(current string, resp *Response) (string, bool, error) {
	cursor := gjson.GetBytes(resp.Body, p.Field).String()
	if cursor == "" {
		return "", false, nil
	}

	next, err := setQueryParam(current, p.Param, cursor)
	if err != nil {
		return "", false, err
	}

	return next, true, nil
}

// PageNumberPager pages through numbered pages until the page reported by the
// server reaches the reported page count.
type PageNumberPager struct {
	// PageField is the JSON path of the current page number.
	PageField string
	// PagesField is the JSON path of the total page count.
	PagesField string
	// Param is the query parameter that selects a page.
	Param string
}

func (p PageNumberPager) Next(current string, resp *Response) (string, bool, error) {
	page := gjson.GetBytes(resp.Body, p.PageField)
	pages := gjson.GetBytes(resp.Body, p.PagesField)

	if !page.Exists() || !pages.Exists() || page.Int() >= pages.Int() {
		return "", false, nil
	}

	next, err := setQueryParam(current, p.Param, strconv.FormatInt(page.Int()+1, 10))
	if err != nil {
		return "", false, err
	}

	return next, true, nil
}
