// Package wordlist writes accepted words, one per line, in arrival order.
//
// The writer performs no sorting or deduplication. File-backed writers can
// hold an advisory lock next to the output so concurrent runs cannot
// interleave into the same list.
package wordlist
