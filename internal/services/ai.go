package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

type AIService struct {
	client *openai.Client
	model  string
}

// ContestDraft is a contest extracted from free text. It is never persisted;
// dates the model could not express as RFC 3339 are left nil.
type ContestDraft struct {
	Title       string     `json:"title"`
	Platform    string     `json:"platform"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type rawDraft struct {
	Title       string  `json:"title"`
	Platform    string  `json:"platform"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// NewAIService creates a client for the OpenAI chat API. An empty baseURL uses the public endpoint.
func NewAIService(apiKey, baseURL string) *AIService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4o,
	}
}

// ExtractContestDraft asks the model to pull contest details out of an announcement
func (s *AIService) ExtractContestDraft(ctx context.Context, text string, now time.Time) (*ContestDraft, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You extract programming contest details from announcements.

Current time: %s

Announcement:
%s

Reply with a single JSON object and nothing else:
{
  "title": "contest title",
  "platform": "hosting platform, e.g. Codeforces, AtCoder, LeetCode, Kaggle",
  "category": "one of Algorithms, Data Science, Security, Web, Other",
  "description": "one or two sentence summary",
  "website": "absolute URL of the contest page, or empty string",
  "start_date": "RFC 3339 timestamp in UTC, or null if unknown",
  "end_date": "RFC 3339 timestamp in UTC, or null if unknown"
}

Convert relative dates such as "next Saturday" into absolute timestamps.`, now.UTC().Format(time.RFC3339), text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrAINoDraft
	}

	return parseDraft(resp.Choices[0].Message.Content)
}

func parseDraft(content string) (*ContestDraft, error) {
	content = stripCodeFence(content)

	var raw rawDraft
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	draft := &ContestDraft{
		Title:       strings.TrimSpace(raw.Title),
		Platform:    strings.TrimSpace(raw.Platform),
		Category:    strings.TrimSpace(raw.Category),
		Description: strings.TrimSpace(raw.Description),
		Website:     strings.TrimSpace(raw.Website),
		StartDate:   parseDraftTime(raw.StartDate),
		EndDate:     parseDraftTime(raw.EndDate),
	}

	if draft.Title == "" {
		return nil, ErrAINoDraft
	}

	return draft, nil
}

func parseDraftTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*value))
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// stripCodeFence removes a surrounding markdown code block, which models often add.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimPrefix(content, "json")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
