package mock

import "github.com/fwojciec/pagetext"

var _ pagetext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagetext.Extractor.
type Extractor struct {
	ExtractFn func(content string, format pagetext.Format) (string, error)
}

func (e *Extractor) Extract(content string, format pagetext.Format) (string, error) {
	return e.ExtractFn(content, format)
}
