// Package kvp is the key-value-pair engine shared by every BVE configuration
// format parser.
//
// # Reading Guide
//
// A parse runs in three stages:
//   - normalize.go: comment stripping, case folding, logical lines
//   - document.go: lines grouped into a Document of sections and entries
//   - file.go, record.go: a FileSchema binds the document onto a typed record,
//     each section through its RecordSchema
//
// # Schemas
//
// Formats describe themselves with immutable tables built once at package
// initialization:
//   - RecordSchema: one section's fields (field.go)
//   - FileSchema: the dialect plus how sections map onto the file record (file.go)
//   - Codec: raw string ↔ typed value (codec.go, enum.go, composite.go)
//
// Binding never fails on content. Every anomaly becomes a Diagnostic and the
// affected field keeps its default; callers wanting strict behavior call
// Diagnostics.Err.
//
// The package holds no mutable package-level state and never logs, so parses
// may run concurrently on shared schemas.
package kvp
