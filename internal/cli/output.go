package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"mlb-scores-service/internal/scoreboard"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the data to be printed.
type OutputResult struct {
	Date  string            `json:"date"`
	Count int               `json:"count"`
	Lines []string          `json:"lines"`
	Games []scoreboard.Game `json:"games,omitempty"`
}

// WriteOutput writes the result in the specified format.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		for _, line := range result.Lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
