package models

import "strings"

// Severity is the ordered risk classification derived from a raw label.
// The ordering is numeric: SeverityLow < SeverityMedium < SeverityHigh.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String renders the display form used across the dashboard ("High" etc.).
func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "High"
	case SeverityLow:
		return "Low"
	default:
		return "Medium"
	}
}

// ClassifyRisk maps a raw risk label to a Severity. Matching is
// case-insensitive, and anything outside {high, medium, low}, including an
// empty label, classifies as medium: unknown risk is treated as
// not-ignorable rather than rejected. Total function, no error case.
func ClassifyRisk(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return SeverityHigh
	case "low":
		return SeverityLow
	default:
		return SeverityMedium
	}
}
