package validator

import (
	play "github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/addressbook/errors"
)

var v *play.Validate

func init() {
	v = play.New()
}

func Instance() *play.Validate {
	return v
}

// Var validates a single scalar value against validator/v10 rules and
// returns a field-level DomainError carrying a stable machine code, or
// nil when the value passes.
//
// Example: Var("phone", "123", "required,len=10,number") ->
// "phone: invalid_length".
func Var(field, value, rules string) error {
	err := v.Var(value, rules)
	if err == nil {
		return nil
	}
	if errs, ok := err.(play.ValidationErrors); ok && len(errs) > 0 {
		return errors.DomainInvariant(field, mapTagToCode(errs[0].Tag()))
	}
	return errors.DomainInvariant(field, "invalid")
}
