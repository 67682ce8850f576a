package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report JSON names, the names the server used.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Marshal encodes a request body. A nil v, or a nil pointer, produces no
// body.
func Marshal(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	return data, nil
}

// Unmarshal decodes a response body into T. The body must match the shape of
// T and every field tagged `validate:"required"` must be present. An empty
// or null body yields the zero value, unless T is a struct with required
// fields.
func Unmarshal[T any](data []byte) (T, error) {
	var out T

	if len(bytes.TrimSpace(data)) == 0 {
		if requiresValue(reflect.TypeFor[T]()) {
			return out, &DecodeError{Err: errors.New("empty response body"), Body: data}
		}
		return out, nil
	}

	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, &DecodeError{Err: err, Body: data}
	}

	if v := reflect.ValueOf(&out).Elem(); v.Kind() == reflect.Pointer && v.IsNil() && requiresValue(v.Type()) {
		return out, &DecodeError{Err: errors.New("null response body"), Body: data}
	}

	if err := checkRequired(reflect.ValueOf(out)); err != nil {
		var zero T
		return zero, &DecodeError{Err: err, Body: data}
	}

	return out, nil
}

// UnmarshalItems decodes the JSON array found at path, or the whole body when
// path is empty. A missing or null path is an empty page.
func UnmarshalItems[T any](data []byte, path string) ([]T, error) {
	if path == "" {
		return Unmarshal[[]T](data)
	}

	if !gjson.ValidBytes(data) {
		return nil, &DecodeError{Err: errors.New("response is not valid JSON"), Body: data}
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() || result.Type == gjson.Null {
		return nil, nil
	}

	if !result.IsArray() {
		return nil, &DecodeError{Err: fmt.Errorf("%s is not an array", path), Body: data}
	}

	items, err := Unmarshal[[]T]([]byte(result.Raw))
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Err = fmt.Errorf("%s: %w", path, decodeErr.Err)
			decodeErr.Body = data
		}
		return nil, err
	}

	return items, nil
}

func checkRequired(v reflect.Value) error {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return getValidator().Struct(v.Interface())
	case reflect.Slice, reflect.Array:
		switch v.Type().Elem().Kind() {
		case reflect.Struct, reflect.Pointer, reflect.Slice, reflect.Array:
		default:
			return nil
		}

		for i := 0; i < v.Len(); i++ {
			if err := checkRequired(v.Index(i)); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}

	return nil
}

// requiresValue reports whether t, after dereferencing pointers, is a struct
// with a field tagged required, directly or in a nested struct.
func requiresValue(t reflect.Type) bool {
	return hasRequiredField(t, map[reflect.Type]bool{})
}

func hasRequiredField(t reflect.Type, seen map[reflect.Type]bool) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct || seen[t] {
		return false
	}
	seen[t] = true

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
			if rule == "required" {
				return true
			}
		}

		if field.IsExported() && hasRequiredField(field.Type, seen) {
			return true
		}
	}

	return false
}
