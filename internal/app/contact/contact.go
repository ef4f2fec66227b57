// Package contact validates contact form submissions.
package contact

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Codes
const (
	CodeNameRequired    = "name_required"
	CodeNameTooShort    = "name_too_short"
	CodeEmailRequired   = "email_required"
	CodeEmailInvalid    = "email_invalid"
	CodeMessageRequired = "message_required"
	CodeMessageTooShort = "message_too_short"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is a contact form submission. Values are trimmed before checks.
type Form struct {
	Name    string `validate:"required,min=3"`
	Email   string `validate:"required,contact_email"`
	Message string `validate:"required,min=10"`
}

// FieldError is a rejected field.
type FieldError struct {
	Field   string // "name", "email" or "message"
	Code    string
	Message string
}

// Result is the outcome of a validation.
type Result struct {
	Errors []FieldError
}

// Valid reports whether the form was accepted.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Field returns the error for field, if any.
func (r Result) Field(field string) (FieldError, bool) {
	for _, e := range r.Errors {
		if e.Field == field {
			return e, true
		}
	}
	return FieldError{}, false
}

// MessageFunc resolves a code to a user-facing message.
type MessageFunc func(code string) string

// Validator checks contact forms.
type Validator struct {
	validate *validator.Validate
	messages MessageFunc
}

// NewValidator creates a validator. A nil messages func reports codes as messages.
func NewValidator(messages MessageFunc) *Validator {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	if messages == nil {
		messages = func(code string) string { return code }
	}
	return &Validator{validate: v, messages: messages}
}

// fieldOrder is the order errors are reported in.
var fieldOrder = []string{"Name", "Email", "Message"}

// Validate checks every field and reports at most one error per field.
func (v *Validator) Validate(f Form) Result {
	f = Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}

	err := v.validate.Struct(f)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Errors: []FieldError{{Field: "form", Code: "invalid", Message: v.messages("invalid")}}}
	}

	byField := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := byField[fe.Field()]; !seen {
			byField[fe.Field()] = codeFor(fe.Field(), fe.Tag())
		}
	}

	var res Result
	for _, field := range fieldOrder {
		code, ok := byField[field]
		if !ok {
			continue
		}
		res.Errors = append(res.Errors, FieldError{
			Field:   strings.ToLower(field),
			Code:    code,
			Message: v.messages(code),
		})
	}
	return res
}

// codeFor maps a failed validation tag on a field to a message code.
func codeFor(field, tag string) string {
	prefix := strings.ToLower(field) + "_"
	switch tag {
	case "required":
		return prefix + "required"
	case "min":
		return prefix + "too_short"
	default:
		return prefix + "invalid"
	}
}
