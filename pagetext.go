// Package pagetext extracts the main textual content from local HTML and
// text files, delegating boilerplate removal (navigation, sidebars, ads,
// footers) to an external extraction engine tuned to favor recall.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, readability/, fs/).
package pagetext

// Format identifies the output format for extracted content.
type Format string

const (
	// FormatHTML emits the extracted main content as HTML markup.
	FormatHTML Format = "html"

	// FormatText emits the extracted main content as plain text.
	FormatText Format = "txt"
)

// ParseFormat validates s as an output format.
// The error message enumerates the valid choices.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHTML, FormatText:
		return Format(s), nil
	default:
		return "", Errorf(EINVALID, "Invalid output format: %s. Valid formats: html, txt", s)
	}
}

// Extractor extracts the main content from a document, removing boilerplate.
// Implementations delegate to an external extraction engine; failures from
// the engine propagate unmodified so callers can treat them as unexpected.
type Extractor interface {
	// Extract processes raw document content and returns the main content
	// rendered in the requested format.
	Extract(content string, format Format) (string, error)
}
