package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"shadigest/internal/digest"
)

// ErrMalformedLine is returned for a manifest line that cannot be parsed.
var ErrMalformedLine = errors.New("malformed manifest line")

// ManifestLine is one expected digest from a checksum manifest.
type ManifestLine struct {
	Line   int
	Path   string
	Digest digest.Digest
}

// ParseManifest reads sha256sum-style lines from r. Blank lines and lines
// starting with '#' are skipped.
func ParseManifest(r io.Reader) ([]ManifestLine, error) {
	var out []ManifestLine
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ml, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		ml.Line = n
		out = append(out, ml)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseLine(line string) (ManifestLine, error) {
	escaped := strings.HasPrefix(line, `\`)
	if escaped {
		line = line[1:]
	}

	path, hex, err := splitLine(line)
	if err != nil {
		return ManifestLine{}, err
	}
	if escaped {
		if path, err = unescapePath(path); err != nil {
			return ManifestLine{}, err
		}
	}
	return newLine(path, hex)
}

func splitLine(line string) (path, hex string, err error) {
	if rest, ok := strings.CutPrefix(line, "SHA256 ("); ok {
		path, hex, found := strings.Cut(rest, ") = ")
		if !found {
			return "", "", ErrMalformedLine
		}
		return path, hex, nil
	}

	hex, rest, found := strings.Cut(line, " ")
	if !found || rest == "" {
		return "", "", ErrMalformedLine
	}
	// " " marks text mode and "*" binary mode; both hash the same bytes.
	switch rest[0] {
	case ' ', '*':
		return rest[1:], hex, nil
	default:
		return "", "", ErrMalformedLine
	}
}

func newLine(path, hex string) (ManifestLine, error) {
	if path == "" {
		return ManifestLine{}, ErrMalformedLine
	}
	d, err := digest.ParseDigest(hex)
	if err != nil {
		return ManifestLine{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return ManifestLine{Path: path, Digest: d}, nil
}
