package quiz

import (
	"errors"
	"testing"
)

func TestQuizQuestionValidate(t *testing.T) {
	newQuestion := func(options []string, correct int) *QuizQuestion {
		encoded, err := NewOptions(options)
		if err != nil {
			t.Fatalf("NewOptions failed: %v", err)
		}
		return &QuizQuestion{Options: encoded, CorrectAnswer: correct}
	}

	t.Run("Valid", func(t *testing.T) {
		q := newQuestion([]string{"a", "b", "c", "d"}, 3)
		if err := q.Validate(); err != nil {
			t.Errorf("Validate returned %v for a valid question", err)
		}
	})

	t.Run("ThreeOptions", func(t *testing.T) {
		q := newQuestion([]string{"a", "b", "c"}, 0)
		if !errors.Is(q.Validate(), ErrInvalidQuestion) {
			t.Error("a question with 3 options must be invalid, not coerced")
		}
	})

	t.Run("FiveOptions", func(t *testing.T) {
		q := newQuestion([]string{"a", "b", "c", "d", "e"}, 0)
		if !errors.Is(q.Validate(), ErrInvalidQuestion) {
			t.Error("a question with 5 options must be invalid")
		}
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		for _, idx := range []int{-1, 4, 10} {
			q := newQuestion([]string{"a", "b", "c", "d"}, idx)
			if !errors.Is(q.Validate(), ErrInvalidQuestion) {
				t.Errorf("index %d should be rejected", idx)
			}
		}
	})

	t.Run("CorruptOptions", func(t *testing.T) {
		q := &QuizQuestion{Options: []byte(`"not-a-list"`), CorrectAnswer: 0}
		if !errors.Is(q.Validate(), ErrInvalidQuestion) {
			t.Error("corrupt options column should be rejected")
		}
	})
}
