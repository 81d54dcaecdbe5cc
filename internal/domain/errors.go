package domain

import (
	"errors"
	"fmt"
)

// DomainError keeps backward compatibility for generic codes.
type DomainError struct {
	Code string
	Err  error
}

func (e DomainError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	if e.Code == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e DomainError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// TravelerCountError reports a traveler manifest whose length does not match
// the declared head count of the booking.
type TravelerCountError struct {
	Declared int
	Got      int
}

func (e TravelerCountError) Error() string {
	return "traveler details are incomplete"
}

// TravelerDetailsError reports a traveler with a missing name or Aadhaar
// number. Index is 1-based for user-facing messages.
type TravelerDetailsError struct {
	Index int
}

func (e TravelerDetailsError) Error() string {
	return fmt.Sprintf("Traveler %d details are incomplete", e.Index)
}

// AadhaarFormatError reports an Aadhaar number that is not exactly 12 ASCII
// digits. Index is 1-based.
type AadhaarFormatError struct {
	Index int
}

func (e AadhaarFormatError) Error() string {
	return fmt.Sprintf("Invalid Aadhaar number for Traveler %d", e.Index)
}

// PastDateError reports an attempt to open a travel date earlier than today.
type PastDateError struct {
	Date string
}

func (e PastDateError) Error() string {
	return fmt.Sprintf("date %s is in the past", e.Date)
}

// DuplicateDateError reports a travel date already present on the calendar.
type DuplicateDateError struct {
	Date string
}

func (e DuplicateDateError) Error() string {
	return fmt.Sprintf("date %s is already available", e.Date)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	if errors.As(err, &target) {
		return true
	}
	var count TravelerCountError
	if errors.As(err, &count) {
		return true
	}
	var details TravelerDetailsError
	if errors.As(err, &details) {
		return true
	}
	var aadhaar AadhaarFormatError
	if errors.As(err, &aadhaar) {
		return true
	}
	var past PastDateError
	return errors.As(err, &past)
}

func IsConflict(err error) bool {
	var target ConflictError
	if errors.As(err, &target) {
		return true
	}
	var dup DuplicateDateError
	return errors.As(err, &dup)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
