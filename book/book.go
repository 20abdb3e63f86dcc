// Package book implements the address book: a name-keyed collection of
// contact records with stable insertion-order enumeration.
package book

import (
	"strings"

	"github.com/vortex-fintech/addressbook/contact"
	"github.com/vortex-fintech/addressbook/domain"
)

const producer = "addressbook"

// Change-event names recorded into the journal.
const (
	EventAdded    = "book.added"
	EventReplaced = "book.replaced"
	EventDeleted  = "book.deleted"
)

// Book owns a mapping from contact name to Record plus the key order.
// The mapping is composed, not embedded, so the only mutation paths are
// Add and Delete and the name-keying invariant cannot be bypassed.
// Like Record, Book has no internal locking; concurrent callers must
// synchronize externally.
type Book struct {
	records map[string]*contact.Record
	order   []string
	events  domain.EventBuffer
}

func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Add inserts r keyed by its name. An existing record under the same
// name is silently replaced (last write wins) and keeps its original
// position in the enumeration order.
func (b *Book) Add(r *contact.Record) {
	if r == nil {
		return
	}

	key := r.Name().Value()
	_, replaced := b.records[key]
	b.records[key] = r
	if !replaced {
		b.order = append(b.order, key)
	}

	name := EventAdded
	if replaced {
		name = EventReplaced
	}
	b.events.Record(domain.MustBaseEvent(name, producer).WithMeta("contact", key))
}

// Find returns the record for an exact name match.
func (b *Book) Find(name string) (*contact.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record for name; absent names are a silent no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}

	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	b.events.Record(domain.MustBaseEvent(EventDeleted, producer).WithMeta("contact", name))
}

// Records enumerates all records in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

func (b *Book) Len() int { return len(b.records) }

// Events exposes the change journal. Consumers drain it with Pull.
func (b *Book) Events() *domain.EventBuffer { return &b.events }

func (b *Book) String() string {
	lines := make([]string, 0, len(b.order))
	for _, key := range b.order {
		lines = append(lines, b.records[key].String())
	}
	return strings.Join(lines, "\n")
}
