// Package pipeline runs the lexicon-to-word-list filter end to end.
//
// Run opens the lexicon, streams rows through a homonym.Resolver and writes
// every emitted word with a wordlist writer, in a single sequential pass. Both
// files are released on every exit path; a failure part way through can leave
// a truncated word list behind, there is no write-then-rename step. Errors are
// tagged with the sentinel markers in errors.go so callers can classify them
// with errors.Is.
package pipeline
