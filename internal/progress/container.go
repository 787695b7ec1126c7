package progress

import "gorm.io/gorm"

type ProgressContainer struct {
	Handler *Handler
	Repo    ProgressRepository
}

func NewProgressContainer(db *gorm.DB) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ProgressContainer{
		Handler: handler,
		Repo:    repo,
	}
}
