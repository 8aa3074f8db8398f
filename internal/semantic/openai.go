package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/voxctl/voxctl/internal/perception"
)

// OpenAIConfig configures the chat-completions endpoint and HTTP behavior.
type OpenAIConfig struct {
	BaseURL    string // default https://api.openai.com/v1/chat/completions
	APIKey     string
	Model      string // default gpt-4o-mini
	HTTPClient *http.Client
}

// openAIService implements Service against an OpenAI-compatible
// chat-completions API. Timeouts and retries are the HTTP client's
// responsibility; the core treats every failure as a tier failure.
type openAIService struct {
	cfg OpenAIConfig
}

// NewOpenAIService builds the chat-completions-backed semantic service.
func NewOpenAIService(cfg OpenAIConfig) Service {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &openAIService{cfg: cfg}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const segmentSystem = `Split the user's desktop command into ordered atomic steps.
Reply with a JSON array of step strings, nothing else. Keep quoted text verbatim.`

const extractSystem = `Extract the literal on-screen label the step refers to.
Reply with the label text only, exactly as written in the step. Never translate
or reword it. Reply with NONE if the step names no on-screen element.`

const generateSystem = `Produce a JSON array of primitive desktop actions for the
command, using only the listed on-screen elements. Each action is an object with
"op" (click|type|key|scroll) and the fields x, y, text, keys, direction, amount
as appropriate. Reply with the JSON array only.`

func (s *openAIService) Segment(ctx context.Context, utterance string) ([]string, error) {
	content, err := s.complete(ctx, segmentSystem, utterance)
	if err != nil {
		return nil, err
	}
	var steps []string
	if err := json.Unmarshal([]byte(extractJSON(content)), &steps); err != nil {
		return nil, fmt.Errorf("parse segmentation response: %w", err)
	}
	var out []string
	for _, s := range steps {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyResponse
	}
	return out, nil
}

func (s *openAIService) ExtractLabel(ctx context.Context, step string, candidates []string) (string, error) {
	prompt := "Step: " + step
	if len(candidates) > 0 {
		prompt += "\nOn-screen elements:\n- " + strings.Join(candidates, "\n- ")
	}
	content, err := s.complete(ctx, extractSystem, prompt)
	if err != nil {
		return "", err
	}
	label := strings.Trim(strings.TrimSpace(content), `"'`)
	if label == "" || strings.EqualFold(label, "NONE") {
		return "", ErrEmptyResponse
	}
	return label, nil
}

func (s *openAIService) GenerateActions(ctx context.Context, utterance string, candidates []perception.Candidate) ([]Action, error) {
	var b strings.Builder
	b.WriteString("Command: " + utterance + "\nOn-screen elements:\n")
	for _, c := range candidates {
		cx, cy := c.Center()
		fmt.Fprintf(&b, "- %q at (%d,%d)\n", c.Text, cx, cy)
	}
	content, err := s.complete(ctx, generateSystem, b.String())
	if err != nil {
		return nil, err
	}
	var actions []Action
	if err := json.Unmarshal([]byte(extractJSON(content)), &actions); err != nil {
		return nil, fmt.Errorf("parse generated actions: %w", err)
	}
	if len(actions) == 0 {
		return nil, ErrEmptyResponse
	}
	for _, a := range actions {
		switch a.Op {
		case "click", "type", "key", "scroll":
		default:
			return nil, fmt.Errorf("generated action has unknown op %q", a.Op)
		}
	}
	return actions, nil
}

// complete performs one chat-completions round trip.
func (s *openAIService) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return parsed.Choices[0].Message.Content, nil
}

// extractJSON strips markdown code fences models sometimes wrap around JSON.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
