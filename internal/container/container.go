package container

import (
	"context"
	"log"
	"os"

	"github.com/saulo-duarte/studydeck/internal/auth"
	"github.com/saulo-duarte/studydeck/internal/config"
	"github.com/saulo-duarte/studydeck/internal/document"
	"github.com/saulo-duarte/studydeck/internal/flashcard"
	"github.com/saulo-duarte/studydeck/internal/generation"
	"github.com/saulo-duarte/studydeck/internal/progress"
	"github.com/saulo-duarte/studydeck/internal/quiz"
	"github.com/saulo-duarte/studydeck/internal/user"
)

type Container struct {
	UserContainer       *user.UserContainer
	DocumentContainer   *document.DocumentContainer
	FlashcardContainer  *flashcard.FlashcardContainer
	QuizContainer       *quiz.QuizContainer
	ProgressContainer   *progress.ProgressContainer
	GenerationContainer *generation.GenerationContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&document.Document{},
		&flashcard.Flashcard{},
		&quiz.QuizQuestion{},
		&progress.Progress{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	flashcardContainer := flashcard.NewFlashcardContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(config.DB)
	progressContainer := progress.NewProgressContainer(config.DB)
	generationContainer := generation.NewGenerationContainer()

	documentContainer := document.NewDocumentContainer(
		config.DB,
		flashcardContainer.Repo,
		quizContainer.Repo,
		generationContainer.Service,
	)

	return &Container{
		UserContainer:       userContainer,
		DocumentContainer:   documentContainer,
		FlashcardContainer:  flashcardContainer,
		QuizContainer:       quizContainer,
		ProgressContainer:   progressContainer,
		GenerationContainer: generationContainer,
	}
}
