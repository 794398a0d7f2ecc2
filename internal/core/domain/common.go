package domain

import "time"

// AuditFields holds the audit timestamps shared by persisted entities.
// Both fields stay zero until the persistence layer's audit listener
// assigns them on the first save.
type AuditFields struct {
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// IsPersisted reports whether the entity has been through at least one
// audited save.
func (a AuditFields) IsPersisted() bool {
	return !a.CreatedAt.IsZero()
}
