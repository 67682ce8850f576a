package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// EncodePath percent-encodes a single path segment. Reserved characters such
// as '/', '?', '#' and space are always escaped.
func EncodePath(segment string) string {
	return url.PathEscape(segment)
}

// ExpandPath substitutes the {name} placeholders of template, in order, with
// the encoded params. The number of params must match the placeholders.
func ExpandPath(template string, params ...string) (string, error) {
	var b strings.Builder

	rest := template
	used := 0

	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			break
		}

		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", &EncodeError{Err: fmt.Errorf("path %q has an unterminated placeholder", template)}
		}

		if used == len(params) {
			return "", &EncodeError{Err: fmt.Errorf("path %q takes more than %d parameters", template, len(params))}
		}

		b.WriteString(rest[:start])
		b.WriteString(EncodePath(params[used]))
		used++

		rest = rest[start+end+1:]
	}

	if used != len(params) {
		return "", &EncodeError{Err: fmt.Errorf("path %q takes %d parameters, got %d", template, used, len(params))}
	}

	return b.String(), nil
}

// EncodeQuery serializes a query parameter struct into a query string.
//
// Fields are named by their `url` tag. Optional parameters are pointer fields
// tagged omitempty: a nil pointer is left out entirely, while a pointer to
// "", 0 or false is sent as that value. A nil params encodes to "".
func EncodeQuery(params any) (string, error) {
	if params == nil {
		return "", nil
	}

	values, err := query.Values(params)
	if err != nil {
		return "", &EncodeError{Err: err}
	}

	return values.Encode(), nil
}

// AppendQuery adds the encoded params to target.
func AppendQuery(target string, params any) (string, error) {
	q, err := EncodeQuery(params)
	if err != nil {
		return "", err
	}

	if q == "" {
		return target, nil
	}

	if strings.Contains(target, "?") {
		return target + "&" + q, nil
	}

	return target + "?" + q, nil
}

// Ptr returns a pointer to v, for setting optional parameters.
func Ptr[T any](v T) *T {
	return &v
}

func setQueryParam(target, name, value string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", &EncodeError{Err: fmt.Errorf("parse %q: %w", target, err)}
	}

	q := u.Query()
	q.Set(name, value)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
