package quiz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	CreateBatch(questions []*QuizQuestion) error
	FindAllByDocumentAndUser(documentID, userID uuid.UUID) ([]*QuizQuestion, error)
	CountByDocumentAndUser(documentID, userID uuid.UUID) (int64, error)
	DeleteByDocument(documentID uuid.UUID) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateBatch(questions []*QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *quizRepository) FindAllByDocumentAndUser(documentID, userID uuid.UUID) ([]*QuizQuestion, error) {
	var questions []*QuizQuestion
	if err := r.db.
		Where("pdf_document_id = ? AND user_id = ?", documentID, userID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) CountByDocumentAndUser(documentID, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&QuizQuestion{}).
		Where("pdf_document_id = ? AND user_id = ?", documentID, userID).
		Count(&count).Error
	return count, err
}

func (r *quizRepository) DeleteByDocument(documentID uuid.UUID) error {
	return r.db.Delete(&QuizQuestion{}, "pdf_document_id = ?", documentID).Error
}
