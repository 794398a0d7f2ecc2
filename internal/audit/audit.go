// Package audit implements the pre-write interception hook that assigns
// audit timestamps to entities on their way into durable storage. The
// persistence adapters call the registered Listener synchronously, exactly
// once per write, before the row is committed.
package audit

import (
	"time"

	"github.com/SscSPs/entity_audit_app/internal/core/domain"
)

// Operation identifies the kind of write about to be committed.
type Operation int

const (
	// OpInsert is the first-time persistence of a record.
	OpInsert Operation = iota
	// OpUpdate is any subsequent modification of an already-persisted record.
	OpUpdate
)

func (op Operation) String() string {
	switch op {
	case OpInsert:
		return "INSERT"
	case OpUpdate:
		return "UPDATE"
	default:
		return "UNKNOWN"
	}
}

// Touch applies the timestamp-assignment rule for one write and returns the
// resulting fields. Insert sets both timestamps to now; update keeps
// CreatedAt and advances ModifiedAt.
func Touch(f domain.AuditFields, op Operation, now time.Time) domain.AuditFields {
	switch op {
	case OpInsert:
		f.CreatedAt = now
		f.ModifiedAt = now
	case OpUpdate:
		f.ModifiedAt = now
	}
	return f
}

// Listener is invoked by a persistence adapter immediately before a write
// commits. Implementations mutate the in-memory entity; they have no other
// side effects and no failure modes of their own.
type Listener interface {
	BeforeSave(fields *domain.AuditFields, op Operation)
}

// TimestampListener stamps CreatedAt/ModifiedAt using an injectable clock.
type TimestampListener struct {
	now func() time.Time
}

// NewTimestampListener returns a listener reading the given clock. A nil
// clock falls back to time.Now.
func NewTimestampListener(now func() time.Time) *TimestampListener {
	if now == nil {
		now = time.Now
	}
	return &TimestampListener{now: now}
}

func (l *TimestampListener) BeforeSave(fields *domain.AuditFields, op Operation) {
	*fields = Touch(*fields, op, l.now())
}

// NopListener leaves entities untouched. Used when auditing is disabled.
type NopListener struct{}

func (NopListener) BeforeSave(*domain.AuditFields, Operation) {}

// ForConfig selects the listener matching the auditing toggle.
func ForConfig(enabled bool) Listener {
	if enabled {
		return NewTimestampListener(nil)
	}
	return NopListener{}
}
