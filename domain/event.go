// Package domain provides the change-event model used by the address
// book: events carry a name, a UTC timestamp and a unique id, and are
// collected in an EventBuffer until a consumer drains them.
package domain

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vortex-fintech/addressbook/timeutil"
)

type Event interface {
	EventName() string
	OccurredAt() time.Time
	EventID() uuid.UUID
}

// Sentinel error for errors.Is checks.
var ErrInvalidEvent = errors.New("invalid event")

var (
	ErrInvalidEventName     = errors.New("invalid event name")
	ErrInvalidEventProducer = errors.New("invalid event producer")
	ErrInvalidEventTime     = errors.New("invalid event time")
	ErrInvalidEventID       = errors.New("invalid event id")
	ErrInvalidEventNil      = errors.New("nil event")
)

// BaseEvent contains common event metadata. It carries no business
// payload beyond the Meta map.
type BaseEvent struct {
	Name string
	At   time.Time

	ID       uuid.UUID
	Producer string

	// Extensible metadata, e.g. the contact name an event refers to.
	Meta map[string]string
}

var _ Event = BaseEvent{} // compile-time contract

// NewBaseEvent creates a safe baseline event (UTC + UUID).
func NewBaseEvent(name, producer string) (BaseEvent, error) {
	name = strings.TrimSpace(name)
	producer = strings.TrimSpace(producer)

	if name == "" {
		return BaseEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventName)
	}
	if producer == "" {
		return BaseEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventProducer)
	}

	return BaseEvent{
		Name:     name,
		At:       timeutil.Now().UTC(), // strict UTC
		ID:       uuid.New(),
		Producer: producer,
	}, nil
}

// MustBaseEvent panics on constructor error.
func MustBaseEvent(name, producer string) BaseEvent {
	e, err := NewBaseEvent(name, producer)
	if err != nil {
		panic(err)
	}
	return e
}

// WithMeta uses copy-on-write to avoid hidden map sharing.
func (e BaseEvent) WithMeta(k, v string) BaseEvent {
	k = strings.TrimSpace(k)
	if k == "" {
		return e
	}
	v = strings.TrimSpace(v)

	if e.Meta == nil {
		e.Meta = map[string]string{k: v}
		return e
	}

	m := make(map[string]string, len(e.Meta)+1)
	maps.Copy(m, e.Meta)
	m[k] = v
	e.Meta = m
	return e
}

// Validate performs strict event invariant checks.
// It returns ErrInvalidEvent with a wrapped specific reason.
func (e BaseEvent) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventName)
	}
	if strings.TrimSpace(e.Producer) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventProducer)
	}

	// At must be present and use time.UTC location (strict UTC contract).
	if e.At.IsZero() || e.At.Location() != time.UTC {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventTime)
	}

	if e.ID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventID)
	}
	return nil
}

// Interface implementation
func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) OccurredAt() time.Time { return e.At } // UTC by contract
func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
