package progress

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/studydeck/internal/utils"
	"gorm.io/datatypes"
)

var ErrCorruptProgress = errors.New("progress record holds an unreadable id list")

// Progress tracks one user's position in one document's study material.
// There is at most one row per (user, document) pair.
type Progress struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_document" json:"user_id"`
	PDFDocumentID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_document" json:"pdf_document_id"`
	FlashcardsTotal       int            `gorm:"not null;default:0" json:"flashcards_total"`
	FlashcardsCompleted   int            `gorm:"not null;default:0" json:"flashcards_completed"`
	FlashcardsViewed      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"flashcards_viewed"`
	QuizTotal             int            `gorm:"not null;default:0" json:"quiz_total"`
	QuizCompleted         int            `gorm:"not null;default:0" json:"quiz_completed"`
	QuizAnswered          datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"quiz_answered"`
	CurrentFlashcardIndex int            `gorm:"not null;default:0" json:"current_flashcard_index"`
	CurrentQuizIndex      int            `gorm:"not null;default:0" json:"current_quiz_index"`
	LastAccessed          util.Timestamp `gorm:"type:timestamp" json:"last_accessed"`
}

// NewProgress builds the initial row created alongside generated material.
func NewProgress(userID, documentID uuid.UUID, flashcardsTotal, quizTotal int) *Progress {
	return &Progress{
		ID:               uuid.New(),
		UserID:           userID,
		PDFDocumentID:    documentID,
		FlashcardsTotal:  flashcardsTotal,
		QuizTotal:        quizTotal,
		FlashcardsViewed: datatypes.JSON([]byte("[]")),
		QuizAnswered:     datatypes.JSON([]byte("[]")),
		LastAccessed:     util.Now(),
	}
}

// RecordFlashcardView marks a flashcard as seen and moves the cursor.
// Recording the same card twice does not inflate the completed count, the
// completed count never exceeds the total, and the cursor stays inside
// [0, total).
func (p *Progress) RecordFlashcardView(cardID uuid.UUID, index int) error {
	viewed, updated, err := appendID(p.FlashcardsViewed, cardID)
	if err != nil {
		return err
	}
	p.FlashcardsViewed = viewed

	completed := updated
	if completed > p.FlashcardsTotal {
		completed = p.FlashcardsTotal
	}
	p.FlashcardsCompleted = completed

	p.CurrentFlashcardIndex = clampIndex(index, p.FlashcardsTotal)
	p.LastAccessed = util.Now()
	return nil
}

// RecordQuizAnswer is the quiz counterpart of RecordFlashcardView.
func (p *Progress) RecordQuizAnswer(questionID uuid.UUID, index int) error {
	answered, updated, err := appendID(p.QuizAnswered, questionID)
	if err != nil {
		return err
	}
	p.QuizAnswered = answered

	completed := updated
	if completed > p.QuizTotal {
		completed = p.QuizTotal
	}
	p.QuizCompleted = completed

	p.CurrentQuizIndex = clampIndex(index, p.QuizTotal)
	p.LastAccessed = util.Now()
	return nil
}

// appendID adds id to the encoded set when absent and returns the new
// membership count.
func appendID(encoded datatypes.JSON, id uuid.UUID) (datatypes.JSON, int, error) {
	var ids []uuid.UUID
	if len(encoded) > 0 {
		if err := json.Unmarshal(encoded, &ids); err != nil {
			return nil, 0, ErrCorruptProgress
		}
	}

	for _, existing := range ids {
		if existing == id {
			return encoded, len(ids), nil
		}
	}

	ids = append(ids, id)
	out, err := json.Marshal(ids)
	if err != nil {
		return nil, 0, err
	}
	return datatypes.JSON(out), len(ids), nil
}

func clampIndex(index, total int) int {
	if total <= 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}
