package trafilatura

import (
	"bytes"
	"errors"
	"strings"

	"github.com/fwojciec/pagetext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagetext.Extractor at compile time.
var _ pagetext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from documents.
// Extraction always favors recall: when the engine is unsure, it keeps
// content rather than dropping it.
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

	opts := trafilatura.Options{
		EnableFallback: true,
		Focus:          trafilatura.FavorRecall,
	}

	result, err := trafilatura.Extract(strings.NewReader(content), opts)
	if err != nil {
		return "", err
	}

	if format == pagetext.FormatText {
		return result.ContentText, nil
	}

	if result.ContentNode == nil {
		return "", nil
	}
	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
