package site_section_port

import "context"

// SiteSectionPort is the store boundary for section blobs. Raw values are
// JSON-serialized payloads keyed by section name.
type SiteSectionPort interface {
	// Configured reports whether a store is wired at all. When false,
	// reads must fall back to static config without touching the store.
	Configured() bool
	// GetSection returns the raw stored value and whether a row exists.
	GetSection(ctx context.Context, key string) (string, bool, error)
	// UpsertSection writes the value unconditionally; last writer wins.
	UpsertSection(ctx context.Context, key string, value string) error
	// DeleteSection removes the stored row for key, if any.
	DeleteSection(ctx context.Context, key string) error
}
