package validation

import "context"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Validator interface {
	Validate(ctx context.Context, value interface{}) ValidationResult
}

func invalid(field, message, value string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{Field: field, Message: message, Value: value},
		},
	}
}
