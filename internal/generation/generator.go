package generation

import "context"

const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

type Flashcard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	OrderIndex int    `json:"order_index"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	OrderIndex    int      `json:"order_index"`
}

type GeneratedContent struct {
	Flashcards    []Flashcard    `json:"flashcards"`
	QuizQuestions []QuizQuestion `json:"quiz_questions"`
	// Source records which generator produced the content.
	Source string `json:"source"`
}

// ContentGenerator produces study material from extracted document text.
// The model-backed generator and the local heuristic fallback both
// implement it, and the service picks between them at runtime.
type ContentGenerator interface {
	Generate(ctx context.Context, text string, pageCount int) (*GeneratedContent, error)
}

type modelGenerator struct {
	provider Provider
	policy   CountPolicy
}

func NewModelGenerator(provider Provider, policy CountPolicy) ContentGenerator {
	return &modelGenerator{provider: provider, policy: policy}
}

func (g *modelGenerator) Generate(ctx context.Context, text string, pageCount int) (*GeneratedContent, error) {
	user := BuildUserPrompt(text, g.policy, pageCount)

	raw, err := g.provider.SendPrompt(ctx, systemPrompt, user)
	if err != nil {
		return nil, err
	}

	content, err := ParseContent(raw)
	if err != nil {
		return nil, err
	}
	content.Source = SourceModel
	return content, nil
}
