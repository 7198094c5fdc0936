// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import "errors"

// ErrorCode identifies a gateway failure to callers. Codes start at 6000 so
// they never collide with host-level error codes.
type ErrorCode uint32

const (
	CodeInvalidData             ErrorCode = 6000
	CodeChaosVerificationFailed ErrorCode = 6001
)

// Error is the closed failure taxonomy of the gateway. Callers match with
// errors.Is against the package values; wrapped errors keep the match.
type Error struct {
	Code    ErrorCode
	Name    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrInvalidData is returned when proof bytes do not decode under the
	// canonical schema: malformed, truncated or with trailing bytes.
	ErrInvalidData = &Error{
		Code:    CodeInvalidData,
		Name:    "InvalidData",
		Message: "The provided data could not be deserialized.",
	}

	// ErrChaosVerificationFailed is returned when a proof decodes but its
	// cut-and-choose trace does not verify.
	ErrChaosVerificationFailed = &Error{
		Code:    CodeChaosVerificationFailed,
		Name:    "ChaosVerificationFailed",
		Message: "Nyxanic: Hyperchaotic trace verification failed, ZK-Disorder proof is invalid.",
	}
)

// Host-level errors. These abort the call like the taxonomy errors but are
// raised by the dispatch layer, never by an operation.
var (
	ErrInvalidInput     = errors.New("invalid disorder call input")
	ErrInvalidOperation = errors.New("invalid operation selector")
)

// ErrNotActive is returned by the configurator when the upgrade is disabled,
// unscheduled, or scheduled after the activating block.
var ErrNotActive = errors.New("disorder upgrade not active")

// CodeOf returns the taxonomy code carried by [err], if any.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Code, true
}
