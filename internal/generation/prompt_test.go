package generation

import (
	"strings"
	"testing"
)

func TestTruncateText(t *testing.T) {
	t.Run("ShortTextUntouched", func(t *testing.T) {
		text := "A short paragraph about nothing in particular."
		if got := TruncateText(text, 1000); got != text {
			t.Errorf("short text was modified: %q", got)
		}
	})

	t.Run("CutsAtSentenceBoundaryInTail", func(t *testing.T) {
		sentence := "This sentence fills the window with useful content. "
		text := strings.Repeat(sentence, 50)
		limit := 1000

		got := TruncateText(text, limit)
		if !strings.HasSuffix(got, truncationMarker) {
			t.Fatalf("missing truncation marker: %q", got[len(got)-60:])
		}

		body := strings.TrimSuffix(got, truncationMarker)
		if !strings.HasSuffix(body, ".") {
			t.Errorf("cut did not land on a sentence boundary: %q", body[len(body)-20:])
		}
		if len(body) > limit {
			t.Errorf("body length %d exceeds limit %d", len(body), limit)
		}
		// boundary must be inside the final 30% of the window
		if len(body) < limit*7/10 {
			t.Errorf("cut at %d is before the tail window start %d", len(body), limit*7/10)
		}
	})

	t.Run("NoBoundaryInTail", func(t *testing.T) {
		text := strings.Repeat("x", 2000)
		got := TruncateText(text, 1000)
		if !strings.HasSuffix(got, truncationMarker) {
			t.Fatal("missing truncation marker")
		}
		if len(strings.TrimSuffix(got, truncationMarker)) != 1000 {
			t.Errorf("hard cut should use the full window")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		text := strings.Repeat("Determinism matters for prompt caching. ", 100)
		if TruncateText(text, 800) != TruncateText(text, 800) {
			t.Error("TruncateText is not deterministic")
		}
	})
}

func TestCountPolicyTargets(t *testing.T) {
	policy := DefaultCountPolicy()

	t.Run("SmallDocumentUsesMinimums", func(t *testing.T) {
		if got := policy.FlashcardTarget(500, 1); got != policy.FlashcardMin {
			t.Errorf("FlashcardTarget = %d, want %d", got, policy.FlashcardMin)
		}
		if got := policy.QuizTarget(500, 1); got != policy.QuizMin {
			t.Errorf("QuizTarget = %d, want %d", got, policy.QuizMin)
		}
	})

	t.Run("LargeDocumentCapsAtMaximums", func(t *testing.T) {
		if got := policy.FlashcardTarget(100000, 80); got != policy.FlashcardMax {
			t.Errorf("FlashcardTarget = %d, want %d", got, policy.FlashcardMax)
		}
		if got := policy.QuizTarget(100000, 80); got != policy.QuizMax {
			t.Errorf("QuizTarget = %d, want %d", got, policy.QuizMax)
		}
	})
}

func TestBuildUserPromptDeterministic(t *testing.T) {
	text := strings.Repeat("Photosynthesis converts light into chemical energy. ", 400)
	policy := DefaultCountPolicy()

	first := BuildUserPrompt(text, policy, 12)
	second := BuildUserPrompt(text, policy, 12)
	if first != second {
		t.Fatal("BuildUserPrompt is not deterministic")
	}

	if !strings.Contains(first, truncationMarker) {
		t.Error("long source text should be truncated in the prompt")
	}
	if !strings.Contains(first, "exactly 4 options") {
		t.Error("prompt must pin the quiz option arity")
	}
}
