package generation

import (
	"context"
	"regexp"
	"strings"
)

const (
	minSentenceLen   = 50
	maxFallbackUnits = 10
	maxFallbackQuiz  = 5
)

// definitionPattern matches sentences of the shape
// "<Capitalized phrase> is <predicate>".
var definitionPattern = regexp.MustCompile(
	`^([A-Z][A-Za-z0-9][A-Za-z0-9 \-]{1,58}?)\s+(?:is|are|was|were)\s+(.+)$`,
)

// three fixed distractors appended to every synthesized quiz question
var genericDistractors = [3]string{
	"A process that is not described in the source material",
	"A term that does not appear in this document",
	"None of the statements in the source text",
}

// FallbackGenerator is the degrade-gracefully path used when the
// completion API is unavailable or returns nothing usable. It is a
// pattern-matched heuristic over sentence units, deliberately low
// quality and bounded in output size.
type FallbackGenerator struct{}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{}
}

func (g *FallbackGenerator) Generate(_ context.Context, text string, _ int) (*GeneratedContent, error) {
	units := splitSentences(text)
	if len(units) == 0 {
		return nil, ErrEmptyContent
	}

	content := &GeneratedContent{Source: SourceFallback}

	for i, unit := range units {
		if i >= maxFallbackUnits {
			break
		}

		if m := definitionPattern.FindStringSubmatch(unit); m != nil {
			term := strings.TrimSpace(m[1])
			predicate := strings.TrimSpace(m[2])

			content.Flashcards = append(content.Flashcards, Flashcard{
				Question:   "What is " + term + "?",
				Answer:     predicate + ". This is one of the key definitions in the material.",
				Category:   "definition",
				OrderIndex: len(content.Flashcards),
			})

			if len(content.QuizQuestions) < maxFallbackQuiz {
				content.QuizQuestions = append(content.QuizQuestions, QuizQuestion{
					Question: "Which of the following describes " + term + "?",
					Options: []string{
						predicate,
						genericDistractors[0],
						genericDistractors[1],
						genericDistractors[2],
					},
					CorrectAnswer: 0,
					Explanation:   "Stated directly in the source material: \"" + unit + "\"",
					OrderIndex:    len(content.QuizQuestions),
				})
			}
			continue
		}

		content.Flashcards = append(content.Flashcards, Flashcard{
			Question:   "What does the material say about \"" + leadingWords(unit, 5) + "\"?",
			Answer:     unit + ".",
			Category:   "concept",
			OrderIndex: len(content.Flashcards),
		})
	}

	return content, nil
}

// splitSentences breaks text into sentence-like units on punctuation
// boundaries and keeps only units long enough to carry a fact.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var units []string
	for _, part := range parts {
		unit := normalizeWhitespace(part)
		if len(unit) >= minSentenceLen {
			units = append(units, unit)
		}
	}
	return units
}

func leadingWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
