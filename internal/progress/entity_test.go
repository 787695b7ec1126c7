package progress

import (
	"testing"

	"github.com/google/uuid"
)

func TestRecordFlashcardView(t *testing.T) {
	userID := uuid.New()
	docID := uuid.New()

	t.Run("CompletedNeverExceedsTotal", func(t *testing.T) {
		p := NewProgress(userID, docID, 2, 0)

		for i := 0; i < 5; i++ {
			if err := p.RecordFlashcardView(uuid.New(), i); err != nil {
				t.Fatalf("RecordFlashcardView failed: %v", err)
			}
			if p.FlashcardsCompleted > p.FlashcardsTotal {
				t.Fatalf("completed %d exceeds total %d", p.FlashcardsCompleted, p.FlashcardsTotal)
			}
		}
		if p.FlashcardsCompleted != 2 {
			t.Errorf("completed = %d, want 2", p.FlashcardsCompleted)
		}
	})

	t.Run("RepeatedViewIsIdempotent", func(t *testing.T) {
		p := NewProgress(userID, docID, 5, 0)
		cardID := uuid.New()

		for i := 0; i < 3; i++ {
			if err := p.RecordFlashcardView(cardID, 0); err != nil {
				t.Fatalf("RecordFlashcardView failed: %v", err)
			}
		}
		if p.FlashcardsCompleted != 1 {
			t.Errorf("completed = %d after repeated views of one card, want 1", p.FlashcardsCompleted)
		}
	})

	t.Run("CursorStaysInRange", func(t *testing.T) {
		p := NewProgress(userID, docID, 5, 0)

		cases := []struct{ index, want int }{
			{-3, 0},
			{0, 0},
			{4, 4},
			{5, 4},
			{100, 4},
		}
		for _, tc := range cases {
			if err := p.RecordFlashcardView(uuid.New(), tc.index); err != nil {
				t.Fatalf("RecordFlashcardView failed: %v", err)
			}
			if p.CurrentFlashcardIndex != tc.want {
				t.Errorf("index %d clamped to %d, want %d", tc.index, p.CurrentFlashcardIndex, tc.want)
			}
		}
	})

	t.Run("ZeroTotal", func(t *testing.T) {
		p := NewProgress(userID, docID, 0, 0)
		if err := p.RecordFlashcardView(uuid.New(), 7); err != nil {
			t.Fatalf("RecordFlashcardView failed: %v", err)
		}
		if p.CurrentFlashcardIndex != 0 {
			t.Errorf("index = %d with zero total, want 0", p.CurrentFlashcardIndex)
		}
		if p.FlashcardsCompleted != 0 {
			t.Errorf("completed = %d with zero total, want 0", p.FlashcardsCompleted)
		}
	})

	t.Run("UpdatesLastAccessed", func(t *testing.T) {
		p := NewProgress(userID, docID, 1, 0)
		before := p.LastAccessed

		if err := p.RecordFlashcardView(uuid.New(), 0); err != nil {
			t.Fatalf("RecordFlashcardView failed: %v", err)
		}
		if p.LastAccessed.Before(before.Time) {
			t.Error("last accessed went backwards")
		}
	})
}

func TestRecordQuizAnswer(t *testing.T) {
	p := NewProgress(uuid.New(), uuid.New(), 0, 3)

	first := uuid.New()
	if err := p.RecordQuizAnswer(first, 1); err != nil {
		t.Fatalf("RecordQuizAnswer failed: %v", err)
	}
	if err := p.RecordQuizAnswer(first, 1); err != nil {
		t.Fatalf("RecordQuizAnswer failed: %v", err)
	}
	if err := p.RecordQuizAnswer(uuid.New(), 9); err != nil {
		t.Fatalf("RecordQuizAnswer failed: %v", err)
	}

	if p.QuizCompleted != 2 {
		t.Errorf("completed = %d, want 2", p.QuizCompleted)
	}
	if p.CurrentQuizIndex != 2 {
		t.Errorf("index = %d, want clamp to 2", p.CurrentQuizIndex)
	}
	if p.QuizCompleted > p.QuizTotal {
		t.Errorf("completed %d exceeds total %d", p.QuizCompleted, p.QuizTotal)
	}
}

func TestCorruptViewedListRejected(t *testing.T) {
	p := NewProgress(uuid.New(), uuid.New(), 1, 0)
	p.FlashcardsViewed = []byte(`{"not": "a list"}`)

	if err := p.RecordFlashcardView(uuid.New(), 0); err != ErrCorruptProgress {
		t.Errorf("error = %v, want ErrCorruptProgress", err)
	}
}
