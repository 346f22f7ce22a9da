// Package homonym folds the lexicon row stream into accepted words.
//
// Consecutive rows that carry a homonym marker and share a spelling form one
// group; a group contributes at most one word, taken from the first sense
// whose word class is accepted. Rows without a homonym marker are validated on
// their own. The Resolver only buffers the group currently open, so memory is
// bounded by the largest group rather than by the input.
package homonym
