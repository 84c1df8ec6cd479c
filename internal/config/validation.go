package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidConfig wraps all validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Unwrap() error {
	if len(e) == 0 {
		return nil
	}
	return ErrInvalidConfig
}

// ValidateConfig checks every section of the configuration and reports
// all problems at once.
func ValidateConfig(c *Config) error {
	var errs ValidationErrors

	if c.Version < 1 || c.Version > Version {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (current: %d)", c.Version, Version),
		})
	}

	errs = append(errs, validateInput(&c.Input)...)
	errs = append(errs, validateDictionary(&c.Dictionary)...)
	errs = append(errs, validateLogging(&c.Logging)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateInput(c *InputConfig) ValidationErrors {
	var errs ValidationErrors

	switch strings.ToLower(c.Method) {
	case "telex", "vni":
	default:
		errs = append(errs, ValidationError{
			Field:   "input.method",
			Message: fmt.Sprintf("unknown method %q (want telex or vni)", c.Method),
		})
	}

	if c.Pack == "" {
		errs = append(errs, ValidationError{
			Field:   "input.pack",
			Message: "pack is required",
		})
	}

	return errs
}

func validateDictionary(c *DictionaryConfig) ValidationErrors {
	var errs ValidationErrors

	if !c.Enabled {
		return errs
	}

	if c.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "dictionary.path",
			Message: "path is required when the dictionary is enabled",
		})
	}

	if c.CandidateLimit < 1 || c.CandidateLimit > 100 {
		errs = append(errs, ValidationError{
			Field:   "dictionary.candidate_limit",
			Message: fmt.Sprintf("limit %d out of range [1, 100]", c.CandidateLimit),
		})
	}

	return errs
}

func validateLogging(c *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", c.Level),
		})
	}

	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (want text or json)", c.Format),
		})
	}

	switch strings.ToLower(c.Output) {
	case "stdout", "stderr":
	case "file", "both":
		if c.FilePath == "" {
			errs = append(errs, ValidationError{
				Field:   "logging.file_path",
				Message: fmt.Sprintf("file path is required for output %q", c.Output),
			})
		}
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: fmt.Sprintf("unknown output %q", c.Output),
		})
	}

	return errs
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
