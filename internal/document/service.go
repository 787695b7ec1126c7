package document

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/studydeck/internal/auth"
	"github.com/saulo-duarte/studydeck/internal/config"
	"github.com/saulo-duarte/studydeck/internal/extractor"
	"github.com/saulo-duarte/studydeck/internal/flashcard"
	"github.com/saulo-duarte/studydeck/internal/generation"
	"github.com/saulo-duarte/studydeck/internal/progress"
	"github.com/saulo-duarte/studydeck/internal/quiz"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrUnauthorized     = errors.New("unauthorized")
)

type DocumentService interface {
	Upload(ctx context.Context, filename string, data []byte) (*UploadResponse, error)
	List(ctx context.Context) ([]DocumentSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	db        *gorm.DB
	repo      DocumentRepository
	flashRepo flashcard.FlashcardRepository
	quizRepo  quiz.QuizRepository
	generator generation.Service
}

func NewService(
	db *gorm.DB,
	repo DocumentRepository,
	flashRepo flashcard.FlashcardRepository,
	quizRepo quiz.QuizRepository,
	generator generation.Service,
) DocumentService {
	return &documentService{
		db:        db,
		repo:      repo,
		flashRepo: flashRepo,
		quizRepo:  quizRepo,
		generator: generator,
	}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

// Upload runs the full pipeline: extract text, generate study material
// (completion API with local fallback) and persist everything in one
// transaction so a failed write leaves no orphaned document behind.
func (s *documentService) Upload(ctx context.Context, filename string, data []byte) (*UploadResponse, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "upload a document")
	if err != nil {
		return nil, err
	}

	extraction, err := extractor.Extract(filename, data)
	if err != nil {
		log.WithError(err).Warn("PDF extraction rejected the upload")
		return nil, err
	}

	content, err := s.generator.Generate(ctx, extraction.Text, extraction.PageCount)
	if err != nil {
		log.WithError(err).Error("Content generation produced nothing usable")
		return nil, err
	}

	doc := &Document{
		ID:        uuid.New(),
		UserID:    userID,
		Filename:  extraction.Filename,
		Content:   extraction.Text,
		PageCount: extraction.PageCount,
	}

	cards := make([]*flashcard.Flashcard, 0, len(content.Flashcards))
	for _, c := range content.Flashcards {
		cards = append(cards, &flashcard.Flashcard{
			ID:            uuid.New(),
			PDFDocumentID: doc.ID,
			UserID:        userID,
			Question:      c.Question,
			Answer:        c.Answer,
			Category:      c.Category,
			OrderIndex:    c.OrderIndex,
		})
	}

	questions := make([]*quiz.QuizQuestion, 0, len(content.QuizQuestions))
	for _, q := range content.QuizQuestions {
		options, err := quiz.NewOptions(q.Options)
		if err != nil {
			return nil, err
		}
		question := &quiz.QuizQuestion{
			ID:            uuid.New(),
			PDFDocumentID: doc.ID,
			UserID:        userID,
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			OrderIndex:    q.OrderIndex,
		}
		if err := question.Validate(); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	prog := progress.NewProgress(userID, doc.ID, len(cards), len(questions))

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		if len(cards) > 0 {
			if err := tx.Create(&cards).Error; err != nil {
				return err
			}
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return tx.Create(prog).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist generated material")
		return nil, err
	}

	log.Infof("Stored document %s with %d flashcards and %d quiz questions (source: %s)",
		doc.ID, len(cards), len(questions), content.Source)

	return &UploadResponse{
		Document:       doc,
		FlashcardCount: len(cards),
		QuizCount:      len(questions),
		Source:         content.Source,
	}, nil
}

// List returns the user's library. The per-document material counts are
// independent read-only queries, so they are fetched concurrently.
func (s *documentService) List(ctx context.Context) ([]DocumentSummary, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "list documents")
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list documents")
		return nil, err
	}

	summaries := make([]DocumentSummary, len(docs))
	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc *Document) {
			defer wg.Done()

			flashCount, err := s.flashRepo.CountByDocumentAndUser(doc.ID, userID)
			if err != nil {
				log.WithError(err).Warnf("Failed to count flashcards for document %s", doc.ID)
			}
			quizCount, err := s.quizRepo.CountByDocumentAndUser(doc.ID, userID)
			if err != nil {
				log.WithError(err).Warnf("Failed to count quiz questions for document %s", doc.ID)
			}

			summaries[i] = DocumentSummary{
				ID:             doc.ID,
				Filename:       doc.Filename,
				PageCount:      doc.PageCount,
				FlashcardCount: flashCount,
				QuizCount:      quizCount,
				CreatedAt:      doc.CreatedAt,
			}
		}(i, doc)
	}
	wg.Wait()

	return summaries, nil
}

func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "read a document")
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	if doc.UserID != userID {
		return nil, ErrUnauthorized
	}
	return doc, nil
}

// Delete cascades to flashcards, quiz questions and progress inside one
// transaction. Non-owners get ErrUnauthorized and nothing is touched.
func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&progress.Progress{}, "pdf_document_id = ?", doc.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&quiz.QuizQuestion{}, "pdf_document_id = ?", doc.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&flashcard.Flashcard{}, "pdf_document_id = ?", doc.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&Document{}, "id = ?", doc.ID).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to delete document")
		return err
	}

	log.Infof("Deleted document %s and its materials", doc.ID)
	return nil
}
