package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// VerifyRequest carries one completed assessment to the scorer.
type VerifyRequest struct {
	Category  string
	SkillName string
	Answers   map[string]string
}

// Verification is the scorer's verdict. Callers must range-check it; the
// provider is not trusted to honour the bounds stated in the prompt.
type Verification struct {
	SkillLevel int     `json:"skillLevel" jsonschema:"description=Assessed proficiency from 1 (novice) to 5 (expert)"`
	Feedback   string  `json:"feedback" jsonschema:"description=Two or three sentences of constructive feedback for the homemaker"`
	Score      float64 `json:"score" jsonschema:"description=Overall assessment score from 0 to 100"`
}

// verificationReply mirrors Verification with every field optional, so a
// reply that leaves one out is told apart from a zero value.
type verificationReply struct {
	SkillLevel *int     `json:"skillLevel"`
	Feedback   *string  `json:"feedback"`
	Score      *float64 `json:"score"`
}

// ErrMalformedReply is wrapped when the provider's reply is missing a field.
var ErrMalformedReply = errors.New("malformed provider reply")

var verificationSchema = GenerateSchema[Verification]()

const verifySystemPrompt = `You assess the skills of homemakers who sell services and products on a marketplace.
Read the assessment answers and judge how proficient the person is in the named skill.
Respond with skillLevel as an integer from 1 to 5, score as a number from 0 to 100, and short, encouraging, specific feedback.`

type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, req VerifyRequest) (Verification, error) {
	var reply verificationReply
	err := v.client.Chat(ctx, Request{
		SystemPrompt: verifySystemPrompt,
		UserPrompt:   verifyPrompt(req),
		SchemaName:   "skill_verification",
		Schema:       verificationSchema,
		MaxTokens:    500,
	}, &reply)
	if err != nil {
		return Verification{}, fmt.Errorf("verify skill: %w", err)
	}
	return reply.verification()
}

func (r verificationReply) verification() (Verification, error) {
	switch {
	case r.SkillLevel == nil:
		return Verification{}, fmt.Errorf("verify skill: %w: missing skillLevel", ErrMalformedReply)
	case r.Score == nil:
		return Verification{}, fmt.Errorf("verify skill: %w: missing score", ErrMalformedReply)
	}
	out := Verification{SkillLevel: *r.SkillLevel, Score: *r.Score}
	if r.Feedback != nil {
		out.Feedback = *r.Feedback
	}
	return out, nil
}

func verifyPrompt(req VerifyRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\nCategory: %s\n\nAssessment answers:\n", req.SkillName, req.Category)

	keys := make([]string, 0, len(req.Answers))
	for k := range req.Answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, req.Answers[k])
	}
	return b.String()
}
