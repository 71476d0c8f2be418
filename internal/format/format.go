package format

import (
	"fmt"
	"strings"

	"github.com/envsanity/envcheck/internal/report"
)

// Formatter renders a report without mutating it.
type Formatter interface {
	// Format renders the report in the target representation.
	Format(r *report.Report) ([]byte, error)

	// Name returns the formatter name (e.g., "text", "json", "yaml").
	Name() string
}

// Names returns the recognized formatter names.
func Names() []string {
	return []string{"text", "json", "yaml"}
}

// New returns the formatter registered under name.
func New(name string) (Formatter, error) {
	switch name {
	case "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (valid formats: %s)", name, strings.Join(Names(), ", "))
}
