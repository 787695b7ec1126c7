package document

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	FindByID(id uuid.UUID) (*Document, error)
	FindAllByUserID(userID uuid.UUID) ([]*Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) FindByID(id uuid.UUID) (*Document, error) {
	var doc Document
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindAllByUserID(userID uuid.UUID) ([]*Document, error) {
	var docs []*Document
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
