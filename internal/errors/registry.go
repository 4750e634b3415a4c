package errors

// Error codes used across markup.
const (
	CodeInvalidName          = "E200"
	CodeUnsupportedOperation = "E201"
	CodeContractViolation    = "E202"
	CodeDeserialization      = "E203"

	CodeConfigNotFound = "E210"
	CodeConfigInvalid  = "E211"
	CodeUnknownKind    = "E220"
	CodeUnknownFormat  = "E221"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Core Errors (E200-E209)
	// ============================================

	CodeInvalidName: {
		Category: CategoryValidation,
		Message:  "Invalid attribute name",
		Detail:   "Attribute names must be non-empty and must not contain whitespace or any of the characters / > \" ' =.",
	},
	CodeUnsupportedOperation: {
		Category: CategoryUsage,
		Message:  "Unsupported operation",
		Detail:   "Attribute values cannot be read by index. Use ValuesAsArray or ValuesAsString instead.",
	},
	CodeContractViolation: {
		Category: CategoryConfig,
		Message:  "Constructor violates the capability contract",
		Detail:   "A registered constructor is missing, returned no instance, or returned an instance for a different name.",
	},
	CodeDeserialization: {
		Category: CategorySerialization,
		Message:  "Malformed state",
		Detail:   "The state passed to Import could not be applied. Nothing was changed.",
	},

	// ============================================
	// Tooling Errors (E210-E229)
	// ============================================

	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "The configuration file given on the command line does not exist.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "markup.json could not be parsed or contains invalid values.",
	},
	CodeUnknownKind: {
		Category: CategoryConfig,
		Message:  "Unknown attribute kind",
		Detail:   "Attribute kinds must be one of the kinds known to the attribute registry.",
	},
	CodeUnknownFormat: {
		Category: CategorySerialization,
		Message:  "Unknown state format",
		Detail:   "Supported state formats are json and yaml.",
	},
}

// Register adds or replaces an error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
