package readiness

import "strings"

type LookupFunc func(key string) (string, bool)

// MissingVariables returns the required names that are unset or blank, in the
// order they appear in required.
func MissingVariables(required []string, lookup LookupFunc) []string {
	missing := make([]string, 0)
	for _, name := range required {
		value, ok := lookup(name)
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// LookupFromMap adapts a plain map to a LookupFunc.
func LookupFromMap(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}
