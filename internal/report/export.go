package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"playerbench/internal/benchmark"
)

// JSON writes the run as indented JSON with durations in nanoseconds.
type JSON struct{}

func (JSON) Present(w io.Writer, run benchmark.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return nil
}

// YAML writes the run as YAML with durations in Go duration notation.
type YAML struct{}

func (YAML) Present(w io.Writer, run benchmark.Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return enc.Close()
}
