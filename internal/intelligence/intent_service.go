package intelligence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idamarten/turnus/internal/llm"
)

// IntentService parses natural language into validated tool calls.
type IntentService struct {
	client llm.Client
	policy ConfirmationPolicy
}

// NewIntentService creates an IntentService backed by the given LLM client.
func NewIntentService(client llm.Client, policy ConfirmationPolicy) *IntentService {
	return &IntentService{client: client, policy: policy}
}

// Parse turns a natural-language request into a resolved intent. The
// returned AskResolution carries the parsed intent plus the execution state
// the confirmation policy assigned to it. Write intents never come back as
// StateExecuted.
func (s *IntentService) Parse(ctx context.Context, text string, now time.Time) (*AskResolution, error) {
	if text == "" {
		return nil, &ParsedIntentError{
			Code:    ErrCodeInvalidOutputFormat,
			Message: "empty request",
		}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskParse,
		SystemPrompt: buildParseSystemPrompt(now.Format("2006-01-02 (Monday)")),
		UserPrompt:   text,
	})
	if err != nil {
		return nil, fmt.Errorf("intent parsing: %w", err)
	}

	intent, err := llm.ExtractJSON(resp.Text, validateParsedIntent)
	if err != nil {
		if errors.Is(err, llm.ErrInvalidOutput) {
			return nil, &ParsedIntentError{
				Code:    ErrCodeInvalidOutputFormat,
				Message: err.Error(),
			}
		}
		return nil, err
	}

	EnforceWriteSafety(&intent)

	if err := ValidateIntentArguments(&intent); err != nil {
		return nil, &ParsedIntentError{
			Code:    ErrCodeArgSchemaMismatch,
			Message: err.Error(),
		}
	}

	return &AskResolution{
		ParsedIntent:   &intent,
		ExecutionState: s.policy.Evaluate(&intent),
	}, nil
}

// validateParsedIntent checks the envelope, not the per-intent arguments.
func validateParsedIntent(intent ParsedIntent) error {
	if !IsValidIntent(intent.Intent) {
		return fmt.Errorf("unknown intent %q", intent.Intent)
	}
	if intent.Risk != RiskReadOnly && intent.Risk != RiskWrite {
		return fmt.Errorf("invalid risk %q", intent.Risk)
	}
	if intent.Confidence < 0 || intent.Confidence > 1 {
		return fmt.Errorf("confidence %v out of range [0, 1]", intent.Confidence)
	}
	if intent.Arguments == nil {
		return fmt.Errorf("arguments object is missing")
	}
	return nil
}
