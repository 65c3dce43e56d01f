package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes results to w in the given format.
func Render(w io.Writer, results []Result, format string) error {
	switch strings.ToLower(format) {
	case FormatText:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, FormatResult(r)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// FormatResult renders a single result as one line of text.
func FormatResult(r Result) string {
	switch r.Operation {
	case OpFactorial:
		if r.Wrapped {
			return fmt.Sprintf("%d! = %d (wrapped mod 2^32)", r.Input, r.Output)
		}
		return fmt.Sprintf("%d! = %d", r.Input, r.Output)
	default:
		return fmt.Sprintf("%d -> %d", r.Input, r.Output)
	}
}
