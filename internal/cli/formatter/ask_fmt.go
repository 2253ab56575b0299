package formatter

import (
	"fmt"
	"strings"

	"github.com/idamarten/turnus/internal/intelligence"
)

// FormatAskResolution renders the parsed intent and what happens next.
func FormatAskResolution(res *intelligence.AskResolution) string {
	intent := res.ParsedIntent

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		Dim("Understood:"),
		Bold(string(intent.Intent)),
		Dim(fmt.Sprintf("(confidence %.0f%%)", intent.Confidence*100)))

	if len(intent.Arguments) > 0 {
		for k, v := range intent.Arguments {
			fmt.Fprintf(&b, "  %s: %v\n", Dim(k), v)
		}
	}

	switch res.ExecutionState {
	case intelligence.StateNeedsConfirmation:
		b.WriteString(StyleYellow.Render("This will change your stored shifts.") + "\n")
	case intelligence.StateNeedsClarification:
		b.WriteString(StyleYellow.Render("I'm not sure what you meant.") + "\n")
		for _, opt := range intent.ClarificationOptions {
			fmt.Fprintf(&b, "  - %s\n", opt)
		}
	case intelligence.StateRejected:
		b.WriteString(StyleRed.Render("Request rejected.") + "\n")
	}
	return b.String()
}
