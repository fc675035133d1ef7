package detector

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StaticSource serves detection from an already fetched HTML document.
// Used by tests and by one-shot detection of saved pages, selector waits
// are irrelevant because the document never changes.
type StaticSource struct {
	doc *goquery.Document
}

func NewStaticSource(r io.Reader) (*StaticSource, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html, %w", err)
	}
	return &StaticSource{doc: doc}, nil
}

func NewStaticSourceFromString(html string) (*StaticSource, error) {
	return NewStaticSource(strings.NewReader(html))
}

func (s *StaticSource) Text(_ context.Context, selector string) (string, error) {
	return strings.TrimSpace(s.doc.Find(selector).First().Text()), nil
}
