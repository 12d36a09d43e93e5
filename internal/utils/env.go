package utils

import (
	"os"
	"strconv"
)

// GetEnvOrDefault returns the value of an environment variable or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseInteger parses a string into an int, falling back on a default.
func ParseInteger(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseBoolean parses a string into a bool, falling back on a default.
func ParseBoolean(s string, defaultValue bool) bool {
	if s == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}
	return value
}
