// Package diag defines the diagnostic model shared by every front-end phase.
//
// Diagnostic is the central record: an optional source file attachment, a
// byte span, a category, a stable numeric code, and message text that is
// either flat or a MessageChain of nested explanations (outermost first).
// Records are created through the catalog in codes.go so that codes, default
// texts, and localization stay in one place; positional {0} placeholders are
// substituted at construction.
//
// The package owns the determinism contract for reporting: Compare is a
// strict total order over diagnostics (file identity, start, length, code,
// message text with a chain-aware walk) and SortAndDedup applies it to
// collapse repeated findings while keeping first occurrences.
//
// Invariant violations — negative or out-of-bounds spans, concatenating onto
// an occupied chain — are compiler bugs and fail fast through
// internal/assert. Everything else is total: lookups miss explicitly,
// localization falls back to catalog text.
//
// Rendering lives in internal/diagfmt; orchestration in internal/driver.
// Keep this package free of IO and formatting so diagnostics stay cheap to
// produce and safe to serialize.
package diag
