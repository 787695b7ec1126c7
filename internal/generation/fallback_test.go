package generation

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const biologyText = "Photosynthesis is the process by which plants convert light into chemical energy. " +
	"Chlorophyll is the pigment responsible for capturing light energy."

func TestFallbackGeneratesDefinitionFlashcards(t *testing.T) {
	g := NewFallbackGenerator()

	content, err := g.Generate(context.Background(), biologyText, 1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(content.Flashcards) < 2 {
		t.Fatalf("got %d flashcards, want at least 2", len(content.Flashcards))
	}
	if content.Source != SourceFallback {
		t.Errorf("source = %q, want %q", content.Source, SourceFallback)
	}

	questions := make(map[string]string)
	for _, card := range content.Flashcards {
		questions[card.Question] = card.Category
	}

	for _, want := range []string{"What is Photosynthesis?", "What is Chlorophyll?"} {
		category, ok := questions[want]
		if !ok {
			t.Errorf("missing expected flashcard question %q (got %v)", want, questions)
			continue
		}
		if category != "definition" {
			t.Errorf("flashcard %q has category %q, want definition", want, category)
		}
	}
}

func TestFallbackQuizShape(t *testing.T) {
	g := NewFallbackGenerator()

	content, err := g.Generate(context.Background(), biologyText, 1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(content.QuizQuestions) == 0 {
		t.Fatal("expected at least one synthesized quiz question")
	}

	for i, q := range content.QuizQuestions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer != 0 {
			t.Errorf("question %d has correct answer at %d; fallback always uses 0", i, q.CorrectAnswer)
		}
		for d := 0; d < 3; d++ {
			if q.Options[d+1] != genericDistractors[d] {
				t.Errorf("question %d distractor %d = %q, want the fixed generic string", i, d, q.Options[d+1])
			}
		}
	}
}

func TestFallbackSkipsShortSentences(t *testing.T) {
	g := NewFallbackGenerator()

	// every unit is under the 50-character minimum
	_, err := g.Generate(context.Background(), "Too short. Also short. Tiny. No luck here.", 1)
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("error = %v, want ErrEmptyContent", err)
	}
}

func TestFallbackGenericConceptCards(t *testing.T) {
	g := NewFallbackGenerator()

	// long enough but not matching the "<Term> is <predicate>" shape
	text := "During the experiment the researchers measured temperature changes across all forty-two trial runs."
	content, err := g.Generate(context.Background(), text, 1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(content.Flashcards) != 1 {
		t.Fatalf("got %d flashcards, want 1", len(content.Flashcards))
	}
	card := content.Flashcards[0]
	if card.Category != "concept" {
		t.Errorf("category = %q, want concept", card.Category)
	}
	if !strings.Contains(card.Question, "During the experiment the researchers") {
		t.Errorf("question should quote the sentence lead: %q", card.Question)
	}
	if len(content.QuizQuestions) != 0 {
		t.Errorf("non-definition sentences should not synthesize quiz questions")
	}
}

func TestFallbackDeterministicAndBounded(t *testing.T) {
	g := NewFallbackGenerator()

	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("Thermodynamics is the study of heat, work and the energy transformations between them. ")
	}

	first, err := g.Generate(context.Background(), sb.String(), 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, _ := g.Generate(context.Background(), sb.String(), 3)

	if !reflect.DeepEqual(first, second) {
		t.Error("fallback output is not deterministic")
	}
	if len(first.Flashcards) > maxFallbackUnits {
		t.Errorf("flashcards %d exceed the unit bound %d", len(first.Flashcards), maxFallbackUnits)
	}
	if len(first.QuizQuestions) > maxFallbackQuiz {
		t.Errorf("quiz questions %d exceed the bound %d", len(first.QuizQuestions), maxFallbackQuiz)
	}
}
