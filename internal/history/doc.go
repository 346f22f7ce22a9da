// Package history records finished word list builds in SQLite.
//
// Each run stores its identifier, input and output paths, the acceptance
// policy it ran with, and the counters from the pipeline summary. The CLI
// reads the most recent runs back for the history command.
//
// Schema changes bump schemaVersion in schema.go; users delete the database
// to adopt the new schema.
package history
