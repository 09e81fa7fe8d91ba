package models

import "time"

// AuditFields are the row-level bookkeeping columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}
