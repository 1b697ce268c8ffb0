package docscrape

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docscrape error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError reports a transport failure for a single URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Attrs filters elements by exact attribute values.
type Attrs map[string]string

// String renders the filter as sorted key="value" pairs.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, a[k]))
	}
	return strings.Join(parts, " ")
}

// TagNotFoundError reports that expected markup is absent from a page.
// Either Tag/Attrs or Selector is set depending on the query form.
type TagNotFoundError struct {
	Tag      string
	Attrs    Attrs
	Selector string
}

func (e *TagNotFoundError) Error() string {
	if e.Selector != "" {
		return fmt.Sprintf("tag not found: %s", e.Selector)
	}
	if len(e.Attrs) == 0 {
		return fmt.Sprintf("tag not found: <%s>", e.Tag)
	}
	return fmt.Sprintf("tag not found: <%s %s>", e.Tag, e.Attrs)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var tagErr *TagNotFoundError
	if errors.As(err, &tagErr) {
		return ENOTFOUND
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return EUNAVAILABLE
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var tagErr *TagNotFoundError
	if errors.As(err, &tagErr) {
		return tagErr.Error()
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Error()
	}
	return "Internal error."
}
