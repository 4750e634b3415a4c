// Package errors provides structured, actionable errors for markup.
//
// Every failure in markup is a programmer or configuration error that is
// discoverable at construction, registration or import time. Errors are
// created from a registered code so callers can match them with errors.Is
// regardless of the detail attached at the failure site.
//
// # Error Categories
//
//   - validation: a value failed an eager check (attribute names)
//   - usage: an operation the capability contract does not support
//   - config: a registry or configuration file is wired incorrectly
//   - serialization: external state could not be imported
//
// # Error Codes
//
// Each error has a unique code (e.g., "E200") that maps to a short message
// and a detailed explanation.
//
// # Usage
//
//	err := errors.New(errors.CodeInvalidName).
//	    WithDetail(`attribute name "on click" contains whitespace`).
//	    WithSuggestion("Remove whitespace and the characters / > \" ' = from the name")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E200: Invalid attribute name
//	//
//	//   attribute name "on click" contains whitespace
//	//
//	//   Hint: Remove whitespace and the characters / > " ' = from the name
package errors
