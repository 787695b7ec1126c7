package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func validPayload() string {
	return `{
		"flashcards": [
			{"question": "What is photosynthesis?", "answer": "The process by which plants convert light into chemical energy.", "category": "definition"},
			{"question": "short", "answer": "too short answer here ok"},
			{"question": "What pigment captures light?", "answer": "Chlorophyll captures light energy in the chloroplasts."}
		],
		"quizQuestions": [
			{"question": "Where does photosynthesis occur?", "options": ["Chloroplasts", "Mitochondria", "Nucleus", "Ribosomes"], "correctAnswer": 0, "explanation": "Photosynthesis takes place in the chloroplasts."},
			{"question": "Only three options", "options": ["a", "b", "c"], "correctAnswer": 0, "explanation": "invalid arity"},
			{"question": "Index out of range", "options": ["a", "b", "c", "d"], "correctAnswer": 4, "explanation": "bad index"},
			{"question": "Snake case index works", "options": ["w", "x", "y", "z"], "correct_answer": 2, "explanation": "uses the alternate key"}
		]
	}`
}

func TestParseContentFiltering(t *testing.T) {
	content, err := ParseContent(validPayload())
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}

	t.Run("Flashcards", func(t *testing.T) {
		if len(content.Flashcards) != 2 {
			t.Fatalf("kept %d flashcards, want 2", len(content.Flashcards))
		}
		if content.Flashcards[0].Category != "definition" {
			t.Errorf("category = %q", content.Flashcards[0].Category)
		}
		// missing category defaults to the generic label
		if content.Flashcards[1].Category != defaultCategory {
			t.Errorf("default category = %q, want %q", content.Flashcards[1].Category, defaultCategory)
		}
		for i, card := range content.Flashcards {
			if card.OrderIndex != i {
				t.Errorf("flashcard %d has order index %d", i, card.OrderIndex)
			}
		}
	})

	t.Run("QuizQuestions", func(t *testing.T) {
		if len(content.QuizQuestions) != 2 {
			t.Fatalf("kept %d quiz questions, want 2", len(content.QuizQuestions))
		}
		for i, q := range content.QuizQuestions {
			if len(q.Options) != 4 {
				t.Errorf("question %d has %d options", i, len(q.Options))
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				t.Errorf("question %d has correct answer %d outside [0,%d)", i, q.CorrectAnswer, len(q.Options))
			}
			if q.OrderIndex != i {
				t.Errorf("question %d has order index %d", i, q.OrderIndex)
			}
		}
		if content.QuizQuestions[1].CorrectAnswer != 2 {
			t.Errorf("snake_case correct_answer not honored: %d", content.QuizQuestions[1].CorrectAnswer)
		}
	})
}

func TestParseContentFencedEquivalence(t *testing.T) {
	plain, err := ParseContent(validPayload())
	if err != nil {
		t.Fatalf("plain parse failed: %v", err)
	}

	fenced, err := ParseContent("```json\n" + validPayload() + "\n```")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}

	if !reflect.DeepEqual(plain, fenced) {
		t.Error("fenced payload parsed differently from the bare payload")
	}
}

func TestParseContentLargerFencedPayload(t *testing.T) {
	// a payload at realistic scale: 10 flashcards, 6 quiz questions
	type fc struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Category string `json:"category"`
	}
	type qq struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}

	payload := struct {
		Flashcards    []fc `json:"flashcards"`
		QuizQuestions []qq `json:"quizQuestions"`
	}{}
	for i := 0; i < 10; i++ {
		payload.Flashcards = append(payload.Flashcards, fc{
			Question: fmt.Sprintf("What is concept number %d in the text?", i),
			Answer:   fmt.Sprintf("Concept number %d is explained at length in the source material.", i),
			Category: "concept",
		})
	}
	for i := 0; i < 6; i++ {
		payload.QuizQuestions = append(payload.QuizQuestions, qq{
			Question:      fmt.Sprintf("Which statement about topic %d is true?", i),
			Options:       []string{"First", "Second", "Third", "Fourth"},
			CorrectAnswer: i % 4,
			Explanation:   "Derived from the text.",
		})
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	plain, err := ParseContent(string(encoded))
	if err != nil {
		t.Fatalf("plain parse failed: %v", err)
	}
	fenced, err := ParseContent("```json\n" + string(encoded) + "\n```")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}

	if len(plain.Flashcards) != 10 || len(plain.QuizQuestions) != 6 {
		t.Fatalf("kept %d/%d items, want 10/6", len(plain.Flashcards), len(plain.QuizQuestions))
	}
	if !reflect.DeepEqual(plain, fenced) {
		t.Error("fenced payload parsed differently from the bare payload")
	}
}

func TestParseContentQuestionsKeyAlias(t *testing.T) {
	raw := `{
		"questions": [
			{"question": "Aliased key works?", "options": ["a", "b", "c", "d"], "correctAnswer": 1, "explanation": "quizQuestions and questions are both accepted"}
		]
	}`
	content, err := ParseContent(raw)
	if err != nil {
		t.Fatalf("ParseContent failed: %v", err)
	}
	if len(content.QuizQuestions) != 1 {
		t.Fatalf("kept %d quiz questions, want 1", len(content.QuizQuestions))
	}
}

func TestParseContentErrors(t *testing.T) {
	t.Run("NotJSON", func(t *testing.T) {
		_, err := ParseContent("no json here at all")
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("error = %v, want ErrMalformedResponse", err)
		}
	})

	t.Run("BrokenJSON", func(t *testing.T) {
		_, err := ParseContent(`{"flashcards": [}]`)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("error = %v, want ErrMalformedResponse", err)
		}
	})

	t.Run("NothingUsable", func(t *testing.T) {
		_, err := ParseContent(`{"flashcards": [{"question": "x", "answer": "y"}], "quizQuestions": []}`)
		if !errors.Is(err, ErrEmptyContent) {
			t.Errorf("error = %v, want ErrEmptyContent", err)
		}
	})
}
