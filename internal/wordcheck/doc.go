// Package wordcheck decides whether a lexicon entry can be used as a
// Bananagrams word.
//
// The checks are pure functions: the 22-letter alphabet and tile budget of the
// Finnish tile set, and the part-of-speech decision table driven by a Policy.
// Nothing here performs I/O, so callers can evaluate words in any order and
// tests can exercise every rule in isolation.
package wordcheck
