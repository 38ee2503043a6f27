package ai

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

// Service produces summaries and chat answers over the project catalog.
type Service struct {
	client *Client
}

func NewService(client *Client) *Service {
	return &Service{client: client}
}

// SummarizeProject returns a short reader-facing summary of a project.
// When the text API is not configured it returns a deterministic fallback
// built from the record itself.
func (s *Service) SummarizeProject(ctx context.Context, p domain.Project) (string, error) {
	if !s.client.Enabled() {
		return fallbackSummary(p), nil
	}

	prompt := fmt.Sprintf(
		"Summarize this university project in two sentences for a public catalog.\nTitle: %s\nYear: %d\nDescription: %s",
		p.Title, p.Year, p.Description,
	)
	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarize project %d: %w", p.ID, err)
	}
	return strings.TrimSpace(text), nil
}

// Chat answers a catalog question with the visible projects as context.
func (s *Service) Chat(ctx context.Context, visible []domain.Project, history []Message, message string) (string, error) {
	if !s.client.Enabled() {
		return fallbackChat(message), nil
	}

	var b strings.Builder
	b.WriteString("You are the assistant for a university project repository. Answer using only the catalog below.\n")
	for _, p := range visible {
		fmt.Fprintf(&b, "- %s (%d): %s\n", p.Title, p.Year, p.Description)
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(message)

	text, err := s.client.GenerateWithHistory(ctx, history, b.String())
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func fallbackSummary(p domain.Project) string {
	desc := p.Description
	if len(desc) > 160 {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := 160
		for cut > 0 && !utf8.RuneStart(desc[cut]) {
			cut--
		}
		desc = desc[:cut] + "…"
	}
	return fmt.Sprintf("%s (%d): %s", p.Title, p.Year, desc)
}

func fallbackChat(message string) string {
	return fmt.Sprintf("The assistant is offline right now, so here is a canned answer. You asked: %q. Try the search page to browse the catalog directly.", message)
}
