package main

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const cluesPrompt = `You are writing clues for a crossword puzzle.

For each of the following words, write one short crossword clue (a
definition or description, never containing the word itself).

Words: %s

Respond ONLY with a JSON object mapping each word to its clue, without
comments or markdown, for example:
{"APPLE": "A red or green fruit", "RIVER": "A natural flowing watercourse"}`

const suggestPrompt = `Suggest %d words for a themed crossword puzzle.

Theme: %s

Rules:
- Words must be single words, letters only, between 3 and %d letters.
- Each word gets one short clue that does not contain the word itself.
- Respond ONLY with a JSON array, without comments or markdown:
[{"word": "APPLE", "clue": "A red or green fruit"}, ...]`

// GenerateClues asks Gemini for a clue per word and returns them keyed
// by the (uppercased) word.
func (g *GeminiClient) GenerateClues(ctx context.Context, words []string) (map[string]string, error) {
	wordList, _ := json.Marshal(words)

	text, err := g.generateJSON(ctx, fmt.Sprintf(cluesPrompt, wordList))
	if err != nil {
		return nil, err
	}

	var clues map[string]string
	if err := json.Unmarshal([]byte(text), &clues); err != nil {
		return nil, fmt.Errorf("parse clues JSON: %w\nraw response: %s", err, text)
	}
	return clues, nil
}

// SuggestWords asks Gemini for a themed word list with clues. Words
// longer than maxLen are requested away but not guaranteed absent; the
// caller still validates each entry through Puzzle.AddWord.
func (g *GeminiClient) SuggestWords(ctx context.Context, theme string, count, maxLen int) ([]WordEntry, error) {
	text, err := g.generateJSON(ctx, fmt.Sprintf(suggestPrompt, count, theme, maxLen))
	if err != nil {
		return nil, err
	}

	var entries []WordEntry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, fmt.Errorf("parse word list JSON: %w\nraw response: %s", err, text)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty word list for theme %q", theme)
	}
	return entries, nil
}

func (g *GeminiClient) generateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return text, nil
}
