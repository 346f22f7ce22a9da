package main

import (
	"encoding/json"
	"io"
)

// printJSON writes v as indented JSON. HTML escaping stays off so paths and
// error text print as written.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
