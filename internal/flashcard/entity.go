package flashcard

import (
	"time"

	"github.com/google/uuid"
)

type Flashcard struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PDFDocumentID uuid.UUID `gorm:"type:uuid;not null;index" json:"pdf_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Question      string    `gorm:"type:text;not null" json:"question"`
	Answer        string    `gorm:"type:text;not null" json:"answer"`
	Category      string    `gorm:"type:text;not null;default:'concept'" json:"category"`
	OrderIndex    int       `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
