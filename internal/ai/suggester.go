package ai

import (
	"context"
	"fmt"
	"strings"
)

// MaxSuggestions caps how many suggestions one call returns.
const MaxSuggestions = 5

type SuggestRequest struct {
	Interests  []string
	Experience string
	Bio        string
}

type Suggestion struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Reason      string `json:"reason" jsonschema:"description=Why this skill fits the person"`
}

type suggestionReply struct {
	Suggestions []Suggestion `json:"suggestions" jsonschema:"maxItems=5"`
}

var suggestionSchema = GenerateSchema[suggestionReply]()

const suggestSystemPrompt = `You help homemakers discover marketable skills.
Given their interests, experience and a short bio, suggest up to five skills they could offer on a marketplace.
Use categories such as Cooking, Baking, Crafts, Handmade, Tutoring, Teaching, Tailoring or Beauty & Wellness.`

type Suggester struct {
	client *Client
}

func NewSuggester(client *Client) *Suggester {
	return &Suggester{client: client}
}

func (s *Suggester) Suggest(ctx context.Context, req SuggestRequest) ([]Suggestion, error) {
	var out suggestionReply
	err := s.client.Chat(ctx, Request{
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   suggestPrompt(req),
		SchemaName:   "skill_suggestions",
		Schema:       suggestionSchema,
		MaxTokens:    1000,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("suggest skills: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(out.Suggestions))
	for _, sg := range out.Suggestions {
		if strings.TrimSpace(sg.Name) == "" {
			continue
		}
		suggestions = append(suggestions, sg)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions, nil
}

func suggestPrompt(req SuggestRequest) string {
	interests := "none given"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}
	return fmt.Sprintf("Interests: %s\nExperience: %s\nBio: %s\n", interests, req.Experience, req.Bio)
}
