package eval

import (
	"fmt"
	"os"
	"regexp"
)

var (
	// Pattern for ${VAR:-default} syntax (must come before ${VAR} pattern)
	envWithDefaultPattern = regexp.MustCompile(`\$\{([^:}]+):-([^}]*)\}`)
	// Pattern for ${VAR} syntax (required)
	envRequiredPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
)

// ExpandEnv expands environment variable references in a config value.
// Supports:
//   - ${VAR} - required variable (error if not set)
//   - ${VAR:-default} - optional with default value
//
// Returns the expanded string or an error if a required variable is missing.
func ExpandEnv(value string) (string, error) {
	result := envWithDefaultPattern.ReplaceAllStringFunc(value, func(match string) string {
		submatches := envWithDefaultPattern.FindStringSubmatch(match)
		if len(submatches) != 3 {
			return match
		}
		varName := submatches[1]
		defaultValue := submatches[2]

		if val, ok := os.LookupEnv(varName); ok && val != "" {
			return val
		}
		return defaultValue
	})

	missingVars := []string{}
	result = envRequiredPattern.ReplaceAllStringFunc(result, func(match string) string {
		submatches := envRequiredPattern.FindStringSubmatch(match)
		if len(submatches) != 2 {
			return match
		}
		varName := submatches[1]

		val, ok := os.LookupEnv(varName)
		if !ok || val == "" {
			missingVars = append(missingVars, match)
			return match
		}
		return val
	})

	if len(missingVars) > 0 {
		return "", fmt.Errorf("required environment variable(s) not set: %v", missingVars)
	}

	return result, nil
}
