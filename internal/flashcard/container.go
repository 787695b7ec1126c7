package flashcard

import "gorm.io/gorm"

type FlashcardContainer struct {
	Handler *Handler
	Repo    FlashcardRepository
}

func NewFlashcardContainer(db *gorm.DB) *FlashcardContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &FlashcardContainer{
		Handler: handler,
		Repo:    repo,
	}
}
