package main

import (
	"encoding/json"
	"io"
)

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// valueOrDash renders unset metadata in tables.
func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
