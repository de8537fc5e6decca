package env

import "os"

// Get reads an environment variable, falling back when unset or empty.
// Structured configuration goes through envconfig; this covers the few
// bootstrap lookups that happen before config is loaded.
func Get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
