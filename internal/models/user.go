package models

import "time"

// AuditFields mirrors the audit timestamp columns present on every table.
type AuditFields struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

// User is the persistence model for the users table.
type User struct {
	UserID   string `db:"user_id"`
	Name     string `db:"name"`
	Username string `db:"username"`
	AuditFields
}
