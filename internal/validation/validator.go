// Package validation collects request-level checks used by the services.
package validation

// Validator accumulates field errors for a request.
type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid reports whether no checks failed.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// Check records an error message for a field when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// AddError records an error for a field, keeping the first one.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// First returns one failure message, for callers that surface a single
// error string.
func (v *Validator) First() string {
	for _, msg := range v.Errors {
		return msg
	}
	return ""
}
