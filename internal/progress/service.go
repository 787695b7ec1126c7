package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/studydeck/internal/auth"
	"github.com/saulo-duarte/studydeck/internal/config"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrProgressNotFound = errors.New("progress not found")
)

type ProgressService interface {
	GetByDocument(ctx context.Context, documentID uuid.UUID) (*Progress, error)
	RecordFlashcardView(ctx context.Context, documentID, cardID uuid.UUID, index int) (*Progress, error)
	RecordQuizAnswer(ctx context.Context, documentID, questionID uuid.UUID, index int) (*Progress, error)
}

type progressService struct {
	repo ProgressRepository
}

func NewService(repo ProgressRepository) ProgressService {
	return &progressService{repo: repo}
}

func (s *progressService) GetByDocument(ctx context.Context, documentID uuid.UUID) (*Progress, error) {
	p, _, err := s.load(ctx, documentID)
	return p, err
}

func (s *progressService) RecordFlashcardView(ctx context.Context, documentID, cardID uuid.UUID, index int) (*Progress, error) {
	log := config.WithContext(ctx)

	p, _, err := s.load(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if err := p.RecordFlashcardView(cardID, index); err != nil {
		log.WithError(err).Error("Failed to record flashcard view")
		return nil, err
	}

	if err := s.repo.Update(p); err != nil {
		log.WithError(err).Error("Failed to persist progress update")
		return nil, err
	}
	return p, nil
}

func (s *progressService) RecordQuizAnswer(ctx context.Context, documentID, questionID uuid.UUID, index int) (*Progress, error) {
	log := config.WithContext(ctx)

	p, _, err := s.load(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if err := p.RecordQuizAnswer(questionID, index); err != nil {
		log.WithError(err).Error("Failed to record quiz answer")
		return nil, err
	}

	if err := s.repo.Update(p); err != nil {
		log.WithError(err).Error("Failed to persist progress update")
		return nil, err
	}
	return p, nil
}

func (s *progressService) load(ctx context.Context, documentID uuid.UUID) (*Progress, uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, uuid.Nil, ErrUnauthorized
	}

	p, err := s.repo.FindByDocumentAndUser(documentID, userID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if p == nil {
		return nil, uuid.Nil, ErrProgressNotFound
	}
	return p, userID, nil
}
