package parser

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/guangie88/doa/pkg/runspec"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Parse reads and validates a doa spec YAML file, returning the parsed File
// struct or an error. Map key case survives decoding verbatim: spec names
// and env variable names are case-sensitive.
func Parse(filePath string) (*runspec.File, error) {
	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("spec file not found: %s", filePath)
	}

	// Read the file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	// Unmarshal into File struct
	var file runspec.File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse spec file - malformed YAML: %w", err)
	}

	// Validate the structure
	if err := validate.Struct(&file); err != nil {
		return nil, formatValidationError(err)
	}

	return &file, nil
}

// Lookup parses filePath and returns the named RunSpec entry from it.
func Lookup(filePath, name string) (*runspec.RunSpec, error) {
	file, err := Parse(filePath)
	if err != nil {
		return nil, err
	}

	spec, ok := file.Specs[name]
	if !ok {
		return nil, fmt.Errorf("spec %q not found in %s", name, filePath)
	}
	return &spec, nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, formatFieldError(e))
		}

		if len(errorMessages) == 1 {
			return fmt.Errorf("validation error: %s", errorMessages[0])
		}

		result := "validation errors:\n"
		for _, msg := range errorMessages {
			result += fmt.Sprintf("  - %s\n", msg)
		}
		return fmt.Errorf("%s", result)
	}
	return fmt.Errorf("validation failed: %w", err)
}

// formatFieldError formats a single validation error into a user-friendly message.
func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("field '%s' is required but missing", field)
	case "eq":
		return fmt.Sprintf("field '%s' must be '%s'", field, e.Param())
	case "min":
		return fmt.Sprintf("field '%s' must have at least %s entry", field, e.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation (%s)", field, tag)
	}
}
