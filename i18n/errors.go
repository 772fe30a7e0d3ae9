package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error whose message is resolved through a Bundle
type TranslatableError interface {
	error
	Key() string
	Args() []any
	Unwrap() error
	WithArgs(args ...any) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider resolves a translation key and its arguments to a message
type MessageProvider interface {
	Message(key string, args ...any) string
}

// TrError is a translatable error with optional formatting arguments and error wrapping support.
// Copies made with WithArgs or Wrap keep the sentinel of the error they were derived from so that
// errors.Is matches them against the package-level sentinel.
//
// Example usage:
//
//	var ErrNotFound = NewError("goargs.error.argument_not_found")
//	err := ErrNotFound.WithArgs("verbose")
//	errors.Is(err, ErrNotFound) // true
type TrError struct {
	sentinel error
	key      string
	args     []any
	wrapped  error
}

// NewError creates a new translatable sentinel error for key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message in the provider's current language, formatted with args if provided
func (e *TrError) Error() string {
	msg := getDefaultProvider().Message(e.key, e.args...)
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...any) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []any {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

type bundleProvider struct {
	bundle *Bundle
}

func (p bundleProvider) Message(key string, args ...any) string {
	return p.bundle.T(key, args...)
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used to render every TrError. Passing nil restores the
// provider backed by Default().
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	defer defaultProviderMux.RUnlock()
	if defaultProvider != nil {
		return defaultProvider
	}

	return bundleProvider{bundle: Default()}
}
