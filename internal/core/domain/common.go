package domain

import "time"

// AuditFields holds the timestamps every stored record carries.
// UpdatedAt doubles as the optimistic-concurrency token for invoices.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateLayout is the calendar-date wire format used across reports (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// LocalizedText holds one rendering per locale code, e.g. {"en": "...", "tr": "..."}.
type LocalizedText map[string]string
