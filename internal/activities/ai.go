package activities

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	domainerrors "github.com/smilemakc/linkedin-outreach-engine/internal/domain/errors"
)

// SummarizePostInput / summarizePost (§4.1): AI classification of a post's
// text; output drives the monitor alert's priority (HIGH iff isCritical).
// Grounded on the teacher's OpenAICompletionExecutor chat-completion call.
type SummarizePostInput struct {
	Text string
}

type SummarizePostOutput struct {
	Summary    string
	IsCritical bool
}

const summarizePostPrompt = `Summarize the following LinkedIn post in one sentence, then on a ` +
	`second line write CRITICAL or ROUTINE depending on whether it signals a ` +
	`career change, funding event, or other business-significant development:

%s`

func (a *Activities) SummarizePost(ctx context.Context, in SummarizePostInput) (SummarizePostOutput, error) {
	if a.OpenAI == nil {
		return SummarizePostOutput{}, domainerrors.NewValidationError("openai_api_key", "no OpenAI client configured")
	}

	resp, err := a.OpenAI.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT4o,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(summarizePostPrompt, in.Text)},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("summarizePost: OpenAI call failed")
		return SummarizePostOutput{}, err
	}
	if len(resp.Choices) == 0 {
		return SummarizePostOutput{}, domainerrors.NewProgrammingError("summarizePost: OpenAI returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	summary, isCritical := parseSummaryResponse(content)
	return SummarizePostOutput{Summary: summary, IsCritical: isCritical}, nil
}

func parseSummaryResponse(content string) (summary string, isCritical bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return content, false
	}
	summary = strings.TrimSpace(lines[0])
	for _, line := range lines[1:] {
		if strings.Contains(strings.ToUpper(line), "CRITICAL") {
			isCritical = true
		}
	}
	return summary, isCritical
}
