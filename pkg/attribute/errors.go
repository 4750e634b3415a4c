package attribute

import (
	"github.com/vango-dev/markup/internal/errors"
)

// Sentinel errors for use with errors.Is. Errors returned by this module
// carry a detail message but match these by code.
var (
	// ErrInvalidName is returned when an attribute name is empty or contains
	// whitespace or one of / > " ' =.
	ErrInvalidName error = errors.New(errors.CodeInvalidName)

	// ErrUnsupportedOperation is returned by OffsetGet.
	ErrUnsupportedOperation error = errors.New(errors.CodeUnsupportedOperation)

	// ErrContractViolation is returned when a registered constructor is
	// missing or produces an unusable instance.
	ErrContractViolation error = errors.New(errors.CodeContractViolation)

	// ErrDeserialization is returned when imported state is malformed.
	ErrDeserialization error = errors.New(errors.CodeDeserialization)
)
