package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound       = errors.New("resource not found")
	ErrForbidden      = errors.New("forbidden")
	ErrRecordNotFound = errors.New("content record not found")

	// Workflow errors
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrAlreadyDissolved       = errors.New("record is permanently dissolved")
	ErrReasonRequired         = errors.New("a reason is required")

	// Assignment errors
	ErrNoEligibleAssignee = errors.New("no eligible assignee")
	ErrUnknownRole        = errors.New("unknown role")

	// Identifier errors
	ErrAllocationExhausted = errors.New("identifier allocation exhausted")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
