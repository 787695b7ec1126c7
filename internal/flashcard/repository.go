package flashcard

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardRepository interface {
	CreateBatch(cards []*Flashcard) error
	FindAllByDocumentAndUser(documentID, userID uuid.UUID) ([]*Flashcard, error)
	CountByDocumentAndUser(documentID, userID uuid.UUID) (int64, error)
	DeleteByDocument(documentID uuid.UUID) error
}

type flashcardRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) CreateBatch(cards []*Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.Create(&cards).Error
}

func (r *flashcardRepository) FindAllByDocumentAndUser(documentID, userID uuid.UUID) ([]*Flashcard, error) {
	var cards []*Flashcard
	if err := r.db.
		Where("pdf_document_id = ? AND user_id = ?", documentID, userID).
		Order("order_index ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *flashcardRepository) CountByDocumentAndUser(documentID, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Flashcard{}).
		Where("pdf_document_id = ? AND user_id = ?", documentID, userID).
		Count(&count).Error
	return count, err
}

func (r *flashcardRepository) DeleteByDocument(documentID uuid.UUID) error {
	return r.db.Delete(&Flashcard{}, "pdf_document_id = ?", documentID).Error
}
