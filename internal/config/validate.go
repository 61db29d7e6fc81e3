package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

var typeNamePattern = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// Validate checks the configuration for errors and returns validation results.
// Every problem is collected; validation never stops at the first error.
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	if strings.TrimSpace(c.Input) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "input",
			Message: "input path cannot be empty",
			Hint:    "set input in the config file, use --input, or pass - for stdin",
		})
	}
	if strings.TrimSpace(c.Output) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output",
			Message: "output path cannot be empty",
			Hint:    "use --output or pass - for stdout",
		})
	}

	for i, entry := range c.Renames {
		validateRenameNames(result, fmt.Sprintf("renames[%d]", i), entry.From, entry.To)
	}
	for _, raw := range c.renameFlags {
		from, to, ok := splitRenameFlag(raw)
		if !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "rename",
				Message: fmt.Sprintf("malformed rename %q", raw),
				Hint:    "expected Old=New with non-empty names",
			})
			continue
		}
		validateRenameNames(result, "rename", from, to)
	}

	if len(c.Renames) == 0 && len(c.renameFlags) == 0 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "renames",
			Message: "no renames configured, output will match input",
			Hint:    "add renames to the config file or pass --rename Old=New",
		})
	}

	c.Logging.validate(result)

	return result
}

func validateRenameNames(result *ValidationResult, field, from, to string) {
	if from == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Message: "from cannot be empty",
		})
	} else if !typeNamePattern.MatchString(from) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("from %q is not a valid GraphQL type name", from),
		})
	}
	if to == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Message: "to cannot be empty",
		})
	} else if !typeNamePattern.MatchString(to) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("to %q is not a valid GraphQL type name", to),
		})
	}
}

func (l *LoggingConfig) validate(result *ValidationResult) {
	switch l.Level {
	case "", "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q", l.Level),
			Hint:    "valid levels: debug, info, warn, error",
		})
	}
	switch l.Format {
	case "", "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q", l.Format),
			Hint:    "valid formats: json, text",
		})
	}
}
