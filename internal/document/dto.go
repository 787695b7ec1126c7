package document

import (
	"time"

	"github.com/google/uuid"
)

// DocumentSummary is the library-listing row; content is deliberately
// left out because extracted text can be large.
type DocumentSummary struct {
	ID             uuid.UUID `json:"id"`
	Filename       string    `json:"filename"`
	PageCount      int       `json:"page_count"`
	FlashcardCount int64     `json:"flashcard_count"`
	QuizCount      int64     `json:"quiz_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type UploadResponse struct {
	Document       *Document `json:"document"`
	FlashcardCount int       `json:"flashcard_count"`
	QuizCount      int       `json:"quiz_count"`
	// Source tells the client whether content came from the completion
	// API or the local fallback generator.
	Source string `json:"source"`
}
