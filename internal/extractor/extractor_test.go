package extractor

import (
	"errors"
	"testing"
)

func TestExtractRejectsNonPDF(t *testing.T) {
	t.Run("EmptyPayload", func(t *testing.T) {
		_, err := Extract("empty.pdf", nil)
		if !errors.Is(err, ErrNotPDF) {
			t.Errorf("Extract(empty) error = %v, want ErrNotPDF", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := Extract("notes.pdf", []byte("this is definitely not a pdf file"))
		if !errors.Is(err, ErrNotPDF) {
			t.Errorf("Extract(garbage) error = %v, want ErrNotPDF", err)
		}
	})

	t.Run("TruncatedHeader", func(t *testing.T) {
		// A correct magic number with a corrupted body must not panic.
		_, err := Extract("broken.pdf", []byte("%PDF-1.7\nnonsense"))
		if !errors.Is(err, ErrNotPDF) {
			t.Errorf("Extract(truncated) error = %v, want ErrNotPDF", err)
		}
	})
}
