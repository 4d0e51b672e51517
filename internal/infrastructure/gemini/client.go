package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API for icebreaker suggestions on freshly
// accepted pairings. The whole feature is optional; a nil *Client is
// handled by callers.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.7)

	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// GenerateIcebreakers produces a few opening lines two newly paired
// accountability partners could send each other.
func (c *Client) GenerateIcebreakers(ctx context.Context, a, b *domain.Profile) ([]string, error) {
	prompt := fmt.Sprintf(`
		Two people just became fitness accountability partners.
		Partner 1: goal=%s, workout=%s, availability=%s
		Partner 2: goal=%s, workout=%s, availability=%s

		Task: Write 3 short, friendly opening messages Partner 1 could send
		to kick off the partnership. Reference shared goals or schedules
		where they exist.
		Output: JSON array of strings. Example: ["Hey! ...", "Hi ..."]
	`,
		attr(a.FitnessGoal), attr(a.WorkoutType), attr(a.Availability),
		attr(b.FitnessGoal), attr(b.WorkoutType), attr(b.Availability),
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var icebreakers []string
	if err := json.Unmarshal([]byte(text), &icebreakers); err != nil {
		// Model sometimes answers with plain lines instead of JSON.
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				icebreakers = append(icebreakers, line)
			}
		}
		if len(icebreakers) == 0 {
			return nil, fmt.Errorf("failed to parse icebreakers: %w", err)
		}
	}
	return icebreakers, nil
}

func attr(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "unspecified"
	}
	return *v
}
