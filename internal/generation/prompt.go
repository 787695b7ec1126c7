package generation

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study-material generator for a learning application.

Your role is to turn source material extracted from a PDF into flashcards and
multiple-choice quiz questions that help a student learn the content.

General rules:
1. Every question and answer must be grammatically correct.
2. Content must be derived strictly from the provided source text. Never invent
   facts that are not in the material.
3. Each flashcard must have:
   - "question": a clear question about the material
   - "answer": a complete, self-contained answer
   - "category": one of "definition", "concept", "process", "fact", "example"
4. Each quiz question must have:
   - "question": the question text
   - "options": exactly 4 plausible options, including the correct one
   - "correctAnswer": the zero-based index of the correct option
   - "explanation": a brief explanation of why that option is correct

Expected JSON format:

{
  "flashcards": [
    {
      "question": "<question text>",
      "answer": "<answer text>",
      "category": "<definition | concept | process | fact | example>"
    }
  ],
  "quizQuestions": [
    {
      "question": "<question text>",
      "options": ["<option>", "<option>", "<option>", "<option>"],
      "correctAnswer": 0,
      "explanation": "<why this option is correct>"
    }
  ]
}

Quality guidelines:
- Do not make the correct option obvious. All options must have a similar
  length and structure, and the distractors must be plausible.
- Vary the style of the questions (definitions, applications, analysis).
- Never reveal the answer inside the question text.
- Always return pure, valid JSON with no text outside the JSON object.`

const truncationMarker = "\n\n[...content truncated...]"

// CountPolicy bounds how many items are requested from the model and
// how much source text goes into the prompt.
type CountPolicy struct {
	FlashcardMin int
	FlashcardMax int
	QuizMin      int
	QuizMax      int
	MaxChars     int
}

func DefaultCountPolicy() CountPolicy {
	return CountPolicy{
		FlashcardMin: 8,
		FlashcardMax: 15,
		QuizMin:      5,
		QuizMax:      12,
		MaxChars:     12000,
	}
}

// FlashcardTarget scales the requested flashcard count with the amount of
// material, staying inside the policy range.
func (p CountPolicy) FlashcardTarget(textLen, pageCount int) int {
	return scaleTarget(p.FlashcardMin, p.FlashcardMax, textLen, pageCount)
}

func (p CountPolicy) QuizTarget(textLen, pageCount int) int {
	return scaleTarget(p.QuizMin, p.QuizMax, textLen, pageCount)
}

func scaleTarget(min, max, textLen, pageCount int) int {
	n := min + textLen/1500
	if pageCount > 10 {
		n++
	}
	if n > max {
		return max
	}
	return n
}

// TruncateText cuts text to limit characters, preferring the last sentence
// boundary inside the final 30% of the window, and appends a marker when
// anything was dropped.
func TruncateText(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}

	window := text[:limit]
	tailStart := limit * 7 / 10

	cut := limit
	if idx := strings.LastIndexAny(window[tailStart:], ".!?"); idx != -1 {
		cut = tailStart + idx + 1
	}

	return strings.TrimSpace(window[:cut]) + truncationMarker
}

// BuildUserPrompt is deterministic for identical text and policy.
func BuildUserPrompt(text string, policy CountPolicy, pageCount int) string {
	truncated := TruncateText(text, policy.MaxChars)

	flashcards := policy.FlashcardTarget(len(text), pageCount)
	quiz := policy.QuizTarget(len(text), pageCount)

	return fmt.Sprintf(
		"Generate %d flashcards and %d multiple-choice quiz questions from the "+
			"source material below (%d pages). Follow the JSON format from the system "+
			"prompt exactly: quiz questions must have exactly 4 options with a "+
			"zero-based \"correctAnswer\" index, and every flashcard must carry a "+
			"category.\n\nSource material:\n\n%s",
		flashcards, quiz, pageCount, truncated,
	)
}
