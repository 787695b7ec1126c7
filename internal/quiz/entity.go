package quiz

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const OptionCount = 4

var ErrInvalidQuestion = errors.New("quiz question must have exactly 4 options and a correct answer inside them")

type QuizQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PDFDocumentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"pdf_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Question      string         `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer int            `gorm:"not null" json:"correct_answer"`
	Explanation   string         `gorm:"type:text;not null" json:"explanation"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// NewOptions encodes an option list for the jsonb column.
func NewOptions(options []string) (datatypes.JSON, error) {
	encoded, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

// OptionList decodes the jsonb options column.
func (q *QuizQuestion) OptionList() ([]string, error) {
	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// Validate enforces the fixed option arity and the correct-answer range.
func (q *QuizQuestion) Validate() error {
	options, err := q.OptionList()
	if err != nil {
		return ErrInvalidQuestion
	}
	if len(options) != OptionCount {
		return ErrInvalidQuestion
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(options) {
		return ErrInvalidQuestion
	}
	return nil
}
