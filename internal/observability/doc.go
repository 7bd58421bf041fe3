// Package observability provides the append-only activity log for Mango
// Lollipop projects. Events are persisted as structured JSON Lines (JSONL)
// next to the project manifest and read back with time, type, and level
// filters.
package observability
