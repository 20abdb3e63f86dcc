package contact

import (
	"fmt"
	"strings"
)

// Record is one contact: a Name plus an ordered list of phone numbers.
// Phones keep insertion order and may repeat; no uniqueness is enforced.
// Record is a plain mutable container with no internal locking; a caller
// targeting concurrent use must synchronize externally.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord validates name and returns a record with no phones.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates number and appends it, even when an equal value is
// already present.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone deletes every occurrence of number. Removing an absent
// number is a silent no-op, which also makes removal idempotent.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != number {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone removes every occurrence of oldNumber, then adds newNumber
// through AddPhone. The operation is deliberately non-atomic: when
// newNumber fails validation the removal has already happened, and when
// oldNumber is absent the net effect is a plain addition. The new value
// always lands at the end of the list.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	r.RemovePhone(oldNumber)
	return r.AddPhone(newNumber)
}

// FindPhone returns the first phone equal to number in list order.
func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == number {
			return p, true
		}
	}
	return Phone{}, false
}

func (r *Record) String() string {
	parts := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		parts = append(parts, p.value)
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name.value, strings.Join(parts, "; "))
}
