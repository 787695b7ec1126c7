package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	minQuestionLen  = 10
	minAnswerLen    = 20
	requiredOptions = 4
	defaultCategory = "concept"
)

// items are decoded individually so one malformed record never discards
// the well-formed remainder of the payload
type rawPayload struct {
	Flashcards    []json.RawMessage `json:"flashcards"`
	QuizQuestions []json.RawMessage `json:"quizQuestions"`
	Questions     []json.RawMessage `json:"questions"`
}

type rawFlashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type rawQuizQuestion struct {
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	CorrectAnswer    *int     `json:"correctAnswer"`
	CorrectAnswerAlt *int     `json:"correct_answer"`
	Explanation      string   `json:"explanation"`
}

// ParseContent extracts, parses and filters a completion response into
// normalized study material. Partial success is fine: only a response
// with zero usable items in total is rejected.
func ParseContent(raw string) (*GeneratedContent, error) {
	payload, err := ExtractJSONPayload(raw)
	if err != nil {
		return nil, err
	}

	var doc rawPayload
	if strings.HasPrefix(payload, "[") {
		// some models answer with a bare array of items
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(payload), &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		doc = classifyItems(items)
	} else {
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	quizRaw := doc.QuizQuestions
	if len(quizRaw) == 0 {
		quizRaw = doc.Questions
	}

	content := &GeneratedContent{
		Flashcards:    filterFlashcards(doc.Flashcards),
		QuizQuestions: filterQuizQuestions(quizRaw),
	}

	if len(content.Flashcards) == 0 && len(content.QuizQuestions) == 0 {
		return nil, ErrEmptyContent
	}
	return content, nil
}

// classifyItems splits a bare array into flashcard and quiz candidates by
// the presence of an options list.
func classifyItems(items []json.RawMessage) rawPayload {
	var doc rawPayload
	for _, item := range items {
		var probe struct {
			Options []json.RawMessage `json:"options"`
		}
		if err := json.Unmarshal(item, &probe); err != nil {
			continue
		}
		if len(probe.Options) > 0 {
			doc.QuizQuestions = append(doc.QuizQuestions, item)
		} else {
			doc.Flashcards = append(doc.Flashcards, item)
		}
	}
	return doc
}

func filterFlashcards(items []json.RawMessage) []Flashcard {
	var cards []Flashcard
	for _, item := range items {
		var raw rawFlashcard
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}

		question := normalizeWhitespace(raw.Question)
		answer := normalizeWhitespace(raw.Answer)
		if len(question) <= minQuestionLen || len(answer) <= minAnswerLen {
			continue
		}

		category := normalizeWhitespace(raw.Category)
		if category == "" {
			category = defaultCategory
		}

		cards = append(cards, Flashcard{
			Question:   question,
			Answer:     answer,
			Category:   strings.ToLower(category),
			OrderIndex: len(cards),
		})
	}
	return cards
}

func filterQuizQuestions(items []json.RawMessage) []QuizQuestion {
	var questions []QuizQuestion
	for _, item := range items {
		var raw rawQuizQuestion
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}

		question := normalizeWhitespace(raw.Question)
		explanation := normalizeWhitespace(raw.Explanation)
		if question == "" || explanation == "" {
			continue
		}

		if len(raw.Options) != requiredOptions {
			continue
		}
		options := make([]string, 0, requiredOptions)
		for _, opt := range raw.Options {
			opt = normalizeWhitespace(opt)
			if opt == "" {
				break
			}
			options = append(options, opt)
		}
		if len(options) != requiredOptions {
			continue
		}

		answer := raw.CorrectAnswer
		if answer == nil {
			answer = raw.CorrectAnswerAlt
		}
		if answer == nil || *answer < 0 || *answer >= requiredOptions {
			continue
		}

		questions = append(questions, QuizQuestion{
			Question:      question,
			Options:       options,
			CorrectAnswer: *answer,
			Explanation:   explanation,
			OrderIndex:    len(questions),
		})
	}
	return questions
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
