package intelligence

// IntentName enumerates the tool calls the NL parser can produce.
type IntentName string

const (
	IntentShiftAdd       IntentName = "shift_add"
	IntentShiftAddSeries IntentName = "shift_add_series"
	IntentShiftRemove    IntentName = "shift_remove"
	IntentShiftsShow     IntentName = "shifts_show"
	IntentPaySummary     IntentName = "pay_summary"
	IntentWeekNumber     IntentName = "week_number"
)

var validIntents = map[IntentName]bool{
	IntentShiftAdd: true, IntentShiftAddSeries: true, IntentShiftRemove: true,
	IntentShiftsShow: true, IntentPaySummary: true, IntentWeekNumber: true,
}

// IsValidIntent returns true if the given name is a known intent.
func IsValidIntent(name IntentName) bool {
	return validIntents[name]
}

// IntentRisk classifies whether an intent is read-only or mutating.
type IntentRisk string

const (
	RiskReadOnly IntentRisk = "read_only"
	RiskWrite    IntentRisk = "write"
)

// writeIntents always require confirmation before execution.
var writeIntents = map[IntentName]bool{
	IntentShiftAdd: true, IntentShiftAddSeries: true, IntentShiftRemove: true,
}

// IsWriteIntent returns true if the intent mutates the shift store.
func IsWriteIntent(name IntentName) bool {
	return writeIntents[name]
}

// ParsedIntent is the structured output of NL-to-tool-call parsing.
type ParsedIntent struct {
	Intent               IntentName             `json:"intent"`
	Risk                 IntentRisk             `json:"risk"`
	Arguments            map[string]interface{} `json:"arguments"`
	Confidence           float64                `json:"confidence"`
	RequiresConfirmation bool                   `json:"requires_confirmation"`
	ClarificationOptions []string               `json:"clarification_options"`
	Rationale            string                 `json:"rationale,omitempty"`
}

// ParsedIntentErrorCode enumerates parse failure reasons.
type ParsedIntentErrorCode string

const (
	ErrCodeArgSchemaMismatch   ParsedIntentErrorCode = "ARGUMENT_SCHEMA_MISMATCH"
	ErrCodeInvalidOutputFormat ParsedIntentErrorCode = "INVALID_OUTPUT_FORMAT"
)

// ParsedIntentError is returned when parsing fails.
type ParsedIntentError struct {
	Code    ParsedIntentErrorCode `json:"code"`
	Message string                `json:"message"`
}

func (e *ParsedIntentError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ExecutionState describes what happened after parsing an intent.
type ExecutionState string

const (
	StateExecuted           ExecutionState = "executed"
	StateNeedsConfirmation  ExecutionState = "needs_confirmation"
	StateNeedsClarification ExecutionState = "needs_clarification"
	StateRejected           ExecutionState = "rejected"
)

// AskResolution is the full result of the ask pipeline.
type AskResolution struct {
	ParsedIntent     *ParsedIntent  `json:"parsed_intent"`
	ExecutionState   ExecutionState `json:"execution_state"`
	ExecutionMessage string         `json:"execution_message"`
}

// ConfirmationPolicy defines when parsed intents may auto-execute.
type ConfirmationPolicy struct {
	AutoExecuteReadThreshold float64
	AlwaysConfirmWrite       bool // always true
}

// DefaultConfirmationPolicy returns a policy with the given read threshold.
func DefaultConfirmationPolicy(threshold float64) ConfirmationPolicy {
	return ConfirmationPolicy{
		AutoExecuteReadThreshold: threshold,
		AlwaysConfirmWrite:       true,
	}
}

// Evaluate determines the execution state for a parsed intent.
func (p ConfirmationPolicy) Evaluate(intent *ParsedIntent) ExecutionState {
	if intent.Risk == RiskWrite || IsWriteIntent(intent.Intent) {
		return StateNeedsConfirmation
	}
	if intent.Confidence >= p.AutoExecuteReadThreshold {
		return StateExecuted
	}
	return StateNeedsClarification
}

// EnforceWriteSafety forces the correct risk and confirmation flags onto
// write intents regardless of what the model produced. Model output cannot
// bypass this boundary.
func EnforceWriteSafety(intent *ParsedIntent) {
	if IsWriteIntent(intent.Intent) {
		intent.Risk = RiskWrite
		intent.RequiresConfirmation = true
	}
	if intent.Risk == RiskWrite {
		intent.RequiresConfirmation = true
	}
}
