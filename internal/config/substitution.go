package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envRef matches ${env://NAME} and ${env://NAME:-default}.
var envRef = regexp.MustCompile(`\$\{env://([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// ExpandEnv replaces ${env://NAME} references in content with the value of
// the named environment variable. ${env://NAME:-default} falls back to
// default when NAME is unset or empty. References without a default whose
// variable is unset are collected and reported together.
func ExpandEnv(content string) (string, error) {
	var missing []string

	out := envRef.ReplaceAllStringFunc(content, func(ref string) string {
		m := envRef.FindStringSubmatch(ref)
		name := m[1]
		if v := os.Getenv(name); v != "" {
			return v
		}
		if strings.Contains(ref, ":-") {
			return m[2]
		}
		missing = append(missing, name)
		return ref
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("environment variable substitution failed: %s not set", strings.Join(missing, ", "))
	}
	return out, nil
}

// HasEnvRefs reports whether content contains any ${env://...} reference.
func HasEnvRefs(content string) bool {
	return envRef.MatchString(content)
}
