package model

// FieldError is a single validation failure tied to a request field.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ValidationError carries one or more field-level validation failures.
// Handlers serialize the Errors slice directly into the response body.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return e.Errors[0].Msg
}

// Add appends a field failure and returns the error for chaining.
func (e *ValidationError) Add(param, msg string) *ValidationError {
	e.Errors = append(e.Errors, FieldError{Msg: msg, Param: param})
	return e
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}
