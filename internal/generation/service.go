package generation

import (
	"context"
	"errors"

	"github.com/saulo-duarte/studydeck/internal/config"
)

type Service interface {
	Generate(ctx context.Context, text string, pageCount int) (*GeneratedContent, error)
}

type service struct {
	model    ContentGenerator
	fallback ContentGenerator
}

func NewService(model, fallback ContentGenerator) Service {
	return &service{model: model, fallback: fallback}
}

// Generate prefers the completion-backed generator and degrades to the
// local heuristic when the provider is unconfigured, the call fails, or
// the response yields no usable items. Fallback selection is not an
// error from the caller's point of view.
func (s *service) Generate(ctx context.Context, text string, pageCount int) (*GeneratedContent, error) {
	log := config.WithContext(ctx)

	content, err := s.model.Generate(ctx, text, pageCount)
	if err == nil {
		log.Infof("Generated %d flashcards and %d quiz questions from completion",
			len(content.Flashcards), len(content.QuizQuestions))
		return content, nil
	}

	switch {
	case errors.Is(err, ErrNotConfigured):
		log.Info("Completion provider not configured, using local fallback generator")
	case errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrEmptyContent):
		log.WithError(err).Warn("Completion output unusable, using local fallback generator")
	default:
		log.WithError(err).Warn("Completion call failed, using local fallback generator")
	}

	content, err = s.fallback.Generate(ctx, text, pageCount)
	if err != nil {
		log.WithError(err).Error("Fallback generation produced nothing")
		return nil, err
	}

	log.Infof("Fallback generated %d flashcards and %d quiz questions",
		len(content.Flashcards), len(content.QuizQuestions))
	return content, nil
}
