package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/avenlon/domainwatch/internal/domain"
)

// expandEnv replaces ${NAME} references with environment values before the
// YAML is parsed, so secrets like the SMTP password can stay out of the
// file. Only the ${...} form expands; a bare $ passes through untouched,
// and full-line comments keep their text. A reference to an unset variable
// is an error rather than an empty string: an empty password would
// otherwise fail much later, at send time.
func expandEnv(path string, b []byte) ([]byte, error) {
	s := string(b)
	if !strings.Contains(s, "${") {
		return b, nil
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		expanded, err := expandLine(path, line)
		if err != nil {
			return nil, err
		}
		lines[i] = expanded
	}

	return []byte(strings.Join(lines, "\n")), nil
}

func expandLine(path, s string) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}

	var out strings.Builder
	out.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			start := i + 2
			end := strings.IndexByte(s[start:], '}')
			if end < 0 {
				return "", expandErr(path, "unclosed ${ reference")
			}
			end = start + end

			name := strings.TrimSpace(s[start:end])
			if name == "" {
				return "", expandErr(path, "empty ${} reference")
			}

			value, ok := os.LookupEnv(name)
			if !ok {
				return "", expandErr(path, fmt.Sprintf("environment variable %s is not set", name))
			}

			out.WriteString(value)
			i = end + 1
			continue
		}

		out.WriteByte(s[i])
		i++
	}

	return out.String(), nil
}

func expandErr(path, msg string) error {
	return &domain.OpError{
		Op:   "config.expand",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
