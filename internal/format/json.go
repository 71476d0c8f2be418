package format

import (
	"encoding/json"

	"github.com/envsanity/envcheck/internal/report"
)

type JSONFormatter struct{}

func (f *JSONFormatter) Name() string {
	return "json"
}

func (f *JSONFormatter) Format(r *report.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
