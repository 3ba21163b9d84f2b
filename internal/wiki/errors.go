package wiki

import (
	"errors"
	"fmt"
)

// Sentinel errors, usually found wrapped in a NetworkError or ParseError
var (
	ErrInvalidLanguage  = errors.New("invalid wiki language code")
	ErrNoRandomArticle  = errors.New("random article list is empty")
	ErrArticleNotFound  = errors.New("article not found")
	ErrNoPages          = errors.New("response has no pages")
	ErrResponseTooLarge = errors.New("response too large")
)

// NetworkError is a transport failure or a non-success HTTP status
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: GET %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: GET %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError is a response body that lacks the expected JSON fields
type ParseError struct {
	Op   string
	Path string // JSON path that could not be read, e.g. "query.random"
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err contains a NetworkError
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsParseError reports whether err contains a ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
