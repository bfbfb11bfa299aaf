package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Algorithm names reported alongside each digest.
const (
	AlgSHA256  = "sha256"
	AlgSHA256d = "sha256d"
)

// Entry is the result of hashing one input.
type Entry struct {
	Path      string `json:"path" yaml:"path"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Digest    string `json:"digest,omitempty" yaml:"digest,omitempty"`
	Bytes     uint64 `json:"bytes" yaml:"bytes"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Check status values.
const (
	StatusOK      = "OK"
	StatusFailed  = "FAILED"
	StatusMissing = "FAILED open or read"
)

// Check is the outcome of verifying one manifest line.
type Check struct {
	Path     string `json:"path" yaml:"path"`
	Status   string `json:"status" yaml:"status"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
}

// WriteEntries renders entries to w. Text output omits failed entries;
// callers report those through the logger.
func WriteEntries(w io.Writer, f Format, entries []Entry) error {
	return encode(w, f, entries, func() error {
		for _, e := range entries {
			if e.Error != "" {
				continue
			}
			path, escaped := escapePath(e.Path)
			if _, err := fmt.Fprintf(w, "%s%s  %s\n", linePrefix(escaped), e.Digest, path); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteChecks renders verification results to w.
func WriteChecks(w io.Writer, f Format, checks []Check) error {
	return encode(w, f, checks, func() error {
		for _, c := range checks {
			path, escaped := escapePath(c.Path)
			if _, err := fmt.Fprintf(w, "%s%s: %s\n", linePrefix(escaped), path, c.Status); err != nil {
				return err
			}
		}
		return nil
	})
}

func encode(w io.Writer, f Format, v any, text func() error) error {
	switch f {
	case FormatText, "":
		return text()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
