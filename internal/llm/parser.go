package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanMarkdownWrapper strips markdown code fences some models insist on
// wrapping JSON responses in.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx != -1 {
			content = content[idx+1:]
		} else {
			content = strings.TrimPrefix(content, "```json")
			content = strings.TrimPrefix(content, "```")
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}

// parseVerdict extracts a category verdict from the model's response text.
func parseVerdict(content string) (Response, error) {
	var jsonResp struct {
		Category  string `json:"category"`
		Reasoning string `json:"reasoning,omitempty"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return Response{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if jsonResp.Category == "" {
		return Response{}, fmt.Errorf("no category found in response")
	}

	return Response{
		Category:  strings.TrimSpace(jsonResp.Category),
		Reasoning: strings.TrimSpace(jsonResp.Reasoning),
	}, nil
}
