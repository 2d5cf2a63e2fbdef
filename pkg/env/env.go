package env

import "os"

// Get returns the environment value for key, or fallback when the variable is
// unset or empty.
func Get(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}
