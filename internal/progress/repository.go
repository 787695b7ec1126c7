package progress

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByDocumentAndUser(documentID, userID uuid.UUID) (*Progress, error)
	Update(p *Progress) error
	DeleteByDocument(documentID uuid.UUID) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByDocumentAndUser(documentID, userID uuid.UUID) (*Progress, error) {
	var p Progress
	if err := r.db.
		First(&p, "pdf_document_id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) Update(p *Progress) error {
	return r.db.Save(p).Error
}

func (r *progressRepository) DeleteByDocument(documentID uuid.UUID) error {
	return r.db.Delete(&Progress{}, "pdf_document_id = ?", documentID).Error
}
