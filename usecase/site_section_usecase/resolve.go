package site_section_usecase

import (
	"context"
	"encoding/json"

	"folio/domain"
	"folio/port/site_section_port"
	"folio/utils/logger"
	"folio/utils/metrics"
)

// Resolved carries a section payload together with where it came from.
type Resolved[T any] struct {
	Value  T
	Source domain.Source
}

// resolveSection applies the shared resolution order for public section
// reads: store when configured, row present and parseable; static config
// otherwise. Store errors are absorbed here on purpose: a public read
// must always produce something renderable. Writes go through the update
// usecase, which never falls back.
func resolveSection[T any](ctx context.Context, store site_section_port.SiteSectionPort, key domain.SectionKey, fallback func() T) Resolved[T] {
	if store == nil || !store.Configured() {
		metrics.CountSectionFallback(string(key))
		return Resolved[T]{Value: fallback(), Source: domain.SourceConfig}
	}

	raw, found, err := store.GetSection(ctx, string(key))
	if err != nil {
		logger.Logger.Warn("section read failed, using config fallback",
			"section", key,
			"error", err)
		metrics.CountSectionFallback(string(key))
		return Resolved[T]{Value: fallback(), Source: domain.SourceConfig}
	}
	if !found {
		metrics.CountSectionFallback(string(key))
		return Resolved[T]{Value: fallback(), Source: domain.SourceConfig}
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Logger.Warn("stored section payload unparseable, using config fallback",
			"section", key,
			"error", err)
		metrics.CountSectionFallback(string(key))
		return Resolved[T]{Value: fallback(), Source: domain.SourceConfig}
	}

	return Resolved[T]{Value: value, Source: domain.SourceDatabase}
}
