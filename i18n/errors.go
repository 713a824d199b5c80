package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	WithProvider(provider MessageProvider) TranslatableError
}

// MessageProvider defines an interface for getting message format strings by key
type MessageProvider interface {
	GetMessage(key string) string
}

// LanguageProvider implements MessageProvider for one language of a Bundle. When the
// language lacks a key, the bundle's default language and then English are tried.
type LanguageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewLanguageProvider creates a provider bound to lang
func NewLanguageProvider(bundle *Bundle, lang language.Tag) *LanguageProvider {
	return &LanguageProvider{bundle: bundle, lang: lang}
}

// GetMessage returns the raw message format for key, or key itself when unknown
func (p *LanguageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	for _, lang := range []language.Tag{p.lang, p.bundle.DefaultLanguage(), language.English} {
		if msg, ok := p.bundle.lookup(lang, key); ok {
			return msg
		}
	}

	return key
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. Copies made by WithArgs, Wrap and WithProvider keep the
// sentinel so that errors.Is matches them against the original.
//
// Example usage:
//
//	err := NewError("validation.error")
//	err = err.WithArgs("field", "value")
//	err = err.Wrap(originalError)
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	provider := getDefaultProvider()
	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message, formatted with args if provided
func (e *TrError) Error() string {
	msg := e.key
	if e.messageProvider != nil {
		msg = e.messageProvider.GetMessage(e.key)
	}
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := e.clone()
	c.args = args
	return c
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	c := e.clone()
	c.wrapped = err
	return c
}

// WithProvider returns a copy of the error rendering through provider
func (e *TrError) WithProvider(provider MessageProvider) TranslatableError {
	c := e.clone()
	c.messageProvider = provider
	return c
}

// SetProvider replaces the provider of e in place. It is meant for package-level
// sentinels and must not be called while other goroutines render e.
func (e *TrError) SetProvider(provider MessageProvider) {
	e.messageProvider = provider
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
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) clone() *TrError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors created afterwards.
// Passing nil restores the English provider over the default bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewLanguageProvider(Default(), language.English)
	}
	return defaultProvider
}
