package readability

import (
	"errors"
	"strings"

	"github.com/fwojciec/pagetext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagetext.Extractor at compile time.
var _ pagetext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from documents.
// It is an alternate engine behind the same interface as the trafilatura
// implementation; go-readability has no recall tuning knob.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw document content and returns the main content in
// the requested format.
func (e *Extractor) Extract(content string, format pagetext.Format) (string, error) {
	if content == "" {
		return "", errors.New("empty document input")
	}

	article, err := readability.FromReader(strings.NewReader(content), nil)
	if err != nil {
		return "", err
	}

	if format == pagetext.FormatText {
		return article.TextContent, nil
	}
	return article.Content, nil
}
