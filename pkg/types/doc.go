// Package types defines the core types and interfaces shared by the flairgen
// pipeline: the derived ProjectIdentity, the per-file FileRecord produced by
// classification, the FS abstraction every stage reads and writes through, and
// the GenerateResult reported at the end of a run.
package types
