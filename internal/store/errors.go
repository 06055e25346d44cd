// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

// Op names a store mutation.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// OpError is returned by failed mutations.
//
// Message is safe to show to an operator: it is the API error message when the
// server sent one, or a fixed "Failed to <op> <kind>" otherwise. Err keeps the
// original error so callers can use [errors.As] to reach an [*apperr.AppError].
type OpError struct {
	Op      Op
	Kind    string
	ID      string
	Message string
	Err     error
}

func (e *OpError) Error() string { return e.Message }

func (e *OpError) Unwrap() error { return e.Err }
