package config

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/keen-tools/blocklist-gen/src/internal/errors"
)

// Validate checks every settings section and returns all problems at once.
// The result wraps ValidationErrors in a VALIDATION_ERROR.
func (s *Settings) Validate() error {
	var validationErrors ValidationErrors

	sections := []struct {
		name  string
		value interface{}
	}{
		{"general", &s.General},
		{"fetch", &s.Fetch},
		{"output", &s.Output},
		{"server", &s.Server},
	}
	for _, section := range sections {
		if err := validate.Struct(section.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, section.name)...)
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("invalid settings", validationErrors)
	}

	if s.Output.HostsFile == s.Output.DomainsFile {
		return errors.NewValidationError("invalid settings", ValidationErrors{{
			FieldPath: "output.domains_file",
			Message:   "must differ from output.hosts_file",
		}})
	}

	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if stderrors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
