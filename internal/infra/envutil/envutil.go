// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"

	"github.com/poruru/sprout/cli/internal/meta"
)

// HostEnvKey constructs a CLI-scoped environment variable name
// by combining the brand prefix with the given suffix.
// Example: HostEnvKey("HOME") returns "SPROUT_HOME".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + strings.ToUpper(strings.TrimSpace(suffix))
}

// GetHostEnv retrieves a CLI-scoped environment variable.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// IsTruthy reports whether the variable is set to a non-empty value.
// Any non-empty string counts, including "0" and "false".
func IsTruthy(key string) bool {
	return os.Getenv(key) != ""
}

// BoolValue parses common boolean spellings. The second result is false
// when the variable is unset or not a recognised value.
func BoolValue(key string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// FirstNonEmpty returns the first non-empty value among the named variables.
func FirstNonEmpty(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
