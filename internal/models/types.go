package models

import "fmt"

// ExtractionStatus represents the current state of an extraction run
type ExtractionStatus string

const (
	StatusPending  ExtractionStatus = "pending"
	StatusRunning  ExtractionStatus = "running"
	StatusComplete ExtractionStatus = "complete"
	StatusFailed   ExtractionStatus = "failed"
)

// ExportFormat selects one of the flat export file formats
type ExportFormat string

const (
	FormatText ExportFormat = "txt"
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// ParseFormat converts a user-supplied format name to an ExportFormat.
func ParseFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatText, FormatCSV, FormatJSON:
		return ExportFormat(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected txt, csv or json)", s)
	}
}
