// Package lexicon streams rows out of the tab-delimited Kotus word list.
//
// A Reader discards the header line, pads short rows to the four logical
// columns (word, homonym marker, word class, inflection code), trims each field
// and skips rows without a word. Lines have no length limit. Rows are produced
// lazily and in input order; the sequence is forward-only and cannot be
// restarted. Malformed UTF-8 is a fatal error.
package lexicon
