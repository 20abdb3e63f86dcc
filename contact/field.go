// Package contact holds the validated value types and the Record
// aggregate of the address book core.
package contact

import "github.com/vortex-fintech/addressbook/validator"

const (
	nameRules  = "required"
	phoneRules = "required,len=10,number"
)

// Name is a validated contact name. Immutable after construction:
// the only way to obtain a Name is through NewName.
type Name struct {
	value string
}

// NewName validates value and wraps it. The single invariant is
// non-emptiness; no trimming or normalization happens here (callers that
// want cleanup use contactutil before constructing).
func NewName(value string) (Name, error) {
	if err := validator.Var("name", value, nameRules); err != nil {
		return Name{}, err
	}
	return Name{value: value}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }

// Phone is a validated phone number: exactly 10 ASCII digits, anchored.
// No whitespace or punctuation is tolerated. Immutable after construction.
type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	if err := validator.Var("phone", value, phoneRules); err != nil {
		return Phone{}, err
	}
	return Phone{value: value}, nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }
