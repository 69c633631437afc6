// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and are mapped to HTTP responses
// by the adapter layer.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNoQuotes indicates a quote source has no quotes to select from.
	// Selecting from an empty source is a contract violation, surfaced
	// explicitly instead of an out-of-bounds failure.
	ErrNoQuotes = errors.New("no quotes available")

	// ErrMalformedQuote indicates a quote source returned data that could
	// not be turned into a Quote.
	ErrMalformedQuote = errors.New("malformed quote data")

	// ErrValidation indicates request validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NoQuotesError provides context for empty-source errors.
type NoQuotesError struct {
	Source string
}

// Error implements the error interface.
func (e *NoQuotesError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("quote source %q has no quotes", e.Source)
	}

	return "quote source has no quotes"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NoQuotesError) Unwrap() error {
	return ErrNoQuotes
}

// NewNoQuotesError creates an empty-source error with context.
func NewNoQuotesError(source string) error {
	return &NoQuotesError{Source: source}
}

// MalformedQuoteError provides context for malformed quote data.
type MalformedQuoteError struct {
	Source string
	Reason string
}

// Error implements the error interface.
func (e *MalformedQuoteError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed quote from %q: %s", e.Source, e.Reason)
	}

	return fmt.Sprintf("malformed quote from %q", e.Source)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MalformedQuoteError) Unwrap() error {
	return ErrMalformedQuote
}

// NewMalformedQuoteError creates a malformed-quote error with context.
func NewMalformedQuoteError(source, reason string) error {
	return &MalformedQuoteError{Source: source, Reason: reason}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNoQuotes checks if an error is an empty-source error.
func IsNoQuotes(err error) bool {
	return errors.Is(err, ErrNoQuotes)
}

// IsMalformedQuote checks if an error is a malformed-quote error.
func IsMalformedQuote(err error) bool {
	return errors.Is(err, ErrMalformedQuote)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
