package main

import (
	"context"
	"os"
	"testing"
)

func TestGenerateClues(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := NewGeminiClient(ctx, projectID, "")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer client.Close()

	words := []string{"APPLE", "RIVER", "MOUNTAIN"}
	clues, err := client.GenerateClues(ctx, words)
	if err != nil {
		t.Fatalf("generate clues: %v", err)
	}

	for _, w := range words {
		if clues[w] == "" {
			t.Errorf("missing clue for %s", w)
		}
	}
	t.Logf("Clues: %v", clues)
}

func TestSuggestWords(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := NewGeminiClient(ctx, projectID, "")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer client.Close()

	entries, err := client.SuggestWords(ctx, "geography", 10, 15)
	if err != nil {
		t.Fatalf("suggest words: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected at least one suggested word")
	}

	for _, e := range entries {
		if e.Word == "" {
			t.Error("suggested entry with empty word")
		}
	}
	t.Logf("Suggested %d words", len(entries))
}
