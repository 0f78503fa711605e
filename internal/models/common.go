package models

import "time"

// AuditFields are the timestamp columns every table carries.
type AuditFields struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
