package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownCurrency indicates a currency code that is not in the active registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrRateNotFound indicates that no direct or inverse rate applies to the requested pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrConversionNotFound is returned by conversions. It matches ErrRateNotFound as well.
var ErrConversionNotFound = fmt.Errorf("%w: conversion not possible", ErrRateNotFound)

// ErrModelUnavailable indicates the language-model backend is unreachable, timed out,
// or does not have the required model.
var ErrModelUnavailable = errors.New("language model unavailable")

// ErrUnparsableResponse indicates the model output could not be recovered as the expected JSON.
var ErrUnparsableResponse = errors.New("unparsable model response")

// AppError carries an HTTP status alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates a 400 AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// RateNotFoundError describes a failed rate resolution precisely enough for an
// operator to see which lookup came back empty.
type RateNotFoundError struct {
	From   string
	To     string
	Source string // empty when resolution walked the source priority list
	AsOf   time.Time
	Tried  []string
	kind   error
}

// NewRateNotFoundError builds a RateNotFoundError; kind is ErrRateNotFound or ErrConversionNotFound.
func NewRateNotFoundError(kind error, from, to, source string, asOf time.Time, tried []string) *RateNotFoundError {
	return &RateNotFoundError{From: from, To: to, Source: source, AsOf: asOf, Tried: tried, kind: kind}
}

func (e *RateNotFoundError) Error() string {
	src := e.Source
	if src == "" {
		src = "any"
	}
	return fmt.Sprintf("%v: no rate for %s to %s (source %s, date %s, tried %v)",
		e.kind, e.From, e.To, src, e.AsOf.Format(time.DateOnly), e.Tried)
}

func (e *RateNotFoundError) Unwrap() error {
	if e.kind == nil {
		return ErrRateNotFound
	}
	return e.kind
}

// ExtractionError reports which stage of the inquiry extraction pipeline failed.
type ExtractionError struct {
	Stage string
	Kind  error
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v during %s: %v", e.Kind, e.Stage, e.Err)
	}
	return fmt.Sprintf("%v during %s", e.Kind, e.Stage)
}

func (e *ExtractionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
