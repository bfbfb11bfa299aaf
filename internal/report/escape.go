package report

import "strings"

var pathEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// escapePath applies sha256sum's filename escaping. The bool reports
// whether the line must start with a backslash.
func escapePath(p string) (string, bool) {
	if !strings.ContainsAny(p, "\\\n\r") {
		return p, false
	}
	return pathEscaper.Replace(p), true
}

// linePrefix returns the marker that flags an escaped line.
func linePrefix(escaped bool) string {
	if escaped {
		return `\`
	}
	return ""
}

func unescapePath(p string) (string, error) {
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		if p[i] != '\\' {
			b.WriteByte(p[i])
			continue
		}
		i++
		if i == len(p) {
			return "", ErrMalformedLine
		}
		switch p[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", ErrMalformedLine
		}
	}
	return b.String(), nil
}
