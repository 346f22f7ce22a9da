// Package main hosts the sanalista CLI entrypoint and command graph.
//
// The Cobra-based command tree builds Bananagrams word lists from the Kotus
// lexicon, explains single-word verdicts, lists recorded runs, and scaffolds
// configuration. Configuration resolution and logging setup live here so the
// internal packages stay free of terminal concerns.
package main
