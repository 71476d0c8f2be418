package format

import (
	"fmt"
	"strings"

	"github.com/envsanity/envcheck/internal/report"
)

// TextFormatter renders the human-readable multi-section report.
type TextFormatter struct{}

func (f *TextFormatter) Name() string {
	return "text"
}

func (f *TextFormatter) Format(r *report.Report) ([]byte, error) {
	var b strings.Builder
	b.WriteString("--- envcheck: starting environment check ---\n")

	if r.Status == report.StatusSuccess {
		fmt.Fprintf(&b, "\nSUCCESS! All %d required variables are set correctly.\n", r.RequiredCount)
		b.WriteString("--- envcheck: finished ---\n")
		return []byte(b.String()), nil
	}

	b.WriteString("\nVALIDATION FAILURE:\n")

	if len(r.Missing) > 0 {
		b.WriteString("\nMISSING VARIABLES:\n")
		for _, name := range r.Missing {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		b.WriteString("  -> Add these variables to your environment or .env file.\n")
	}

	if len(r.Empty) > 0 {
		b.WriteString("\nEMPTY VARIABLES:\n")
		for _, name := range r.Empty {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		b.WriteString("  -> These variables are set but empty. They must have a value.\n")
	}

	if len(r.TypeErrors) > 0 {
		b.WriteString("\nTYPE MISMATCH ERRORS:\n")
		for _, te := range r.TypeErrors {
			fmt.Fprintf(&b, "  - %s | expected: %s | found: '%s'\n", te.Key, te.Expected, te.ActualValue)
			fmt.Fprintf(&b, "    reason: %s\n", te.Message)
		}
	}

	fmt.Fprintf(&b, "\n--- envcheck: %d missing, %d empty, %d type errors (total errors: %d) ---\n",
		len(r.Missing), len(r.Empty), len(r.TypeErrors), r.ErrorCount())
	b.WriteString("Fix the errors listed above.\n")
	b.WriteString("--- envcheck: finished ---\n")
	return []byte(b.String()), nil
}
