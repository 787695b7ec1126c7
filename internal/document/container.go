package document

import (
	"github.com/saulo-duarte/studydeck/internal/flashcard"
	"github.com/saulo-duarte/studydeck/internal/generation"
	"github.com/saulo-duarte/studydeck/internal/quiz"
	"gorm.io/gorm"
)

type DocumentContainer struct {
	Handler *Handler
	Service DocumentService
}

func NewDocumentContainer(
	db *gorm.DB,
	flashRepo flashcard.FlashcardRepository,
	quizRepo quiz.QuizRepository,
	generator generation.Service,
) *DocumentContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, flashRepo, quizRepo, generator)
	handler := NewHandler(service)

	return &DocumentContainer{
		Handler: handler,
		Service: service,
	}
}
