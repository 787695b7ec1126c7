package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotPDF means the payload could not be parsed as a PDF at all.
	ErrNotPDF = errors.New("file is not a readable pdf")
	// ErrNoText means the PDF parsed but produced no extractable text,
	// which is typical for scanned or image-only documents.
	ErrNoText = errors.New("pdf contains no extractable text")
)

type Extraction struct {
	Filename  string
	Text      string
	PageCount int
}

// Extract reads page text in order and joins pages with paragraph breaks.
// Pages that fail individually (image-only pages) are skipped rather than
// failing the whole document.
func Extract(filename string, data []byte) (result *Extraction, err error) {
	defer func() {
		// the pdf library panics on some corrupted files
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrNotPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	pageCount := reader.NumPage()

	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return nil, ErrNoText
	}

	return &Extraction{
		Filename:  filename,
		Text:      content,
		PageCount: pageCount,
	}, nil
}
