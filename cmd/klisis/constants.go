package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 20
)

// Valid output formats.
var (
	validOutputFormats  = []string{"csv", "json"}
	validHistoryFormats = []string{"table", "json", "csv"}
)

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
