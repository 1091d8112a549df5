// Package parser provides functionality to parse league documents
// extracted from PDF page text and HTML reports
package parser

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ExtractPageTexts flattens each page of a PDF into a single text
// blob, in page order. Pages whose text cannot be extracted are
// returned as empty strings so page indices stay stable.
func ExtractPageTexts(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return pages, nil
}
