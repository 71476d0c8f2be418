// Package report builds the structured outcome of one validation run.
package report

import (
	"github.com/envsanity/envcheck/internal/resolver"
	"github.com/envsanity/envcheck/internal/spec"
	"github.com/envsanity/envcheck/internal/validator"
)

// Overall run status.
const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// TypeError records one type-conformance failure.
type TypeError struct {
	Key         string `json:"key" yaml:"key"`
	Expected    string `json:"expected" yaml:"expected"`
	ActualValue string `json:"actual_value" yaml:"actual_value"`
	Message     string `json:"message" yaml:"message"`
}

// Report is the aggregate outcome of one run. The field set, names, and
// order are a stable serialization contract consumed by CI tooling.
type Report struct {
	Status          string      `json:"status" yaml:"status"`
	RequiredCount   int         `json:"required_count" yaml:"required_count"`
	FoundCount      int         `json:"found_count" yaml:"found_count"`
	Missing         []string    `json:"missing" yaml:"missing"`
	Empty           []string    `json:"empty" yaml:"empty"`
	TypeErrors      []TypeError `json:"type_errors" yaml:"type_errors"`
	AllChecksPassed bool        `json:"all_checks_passed" yaml:"all_checks_passed"`
}

// ErrorCount is the total number of failed checks.
func (r *Report) ErrorCount() int {
	return len(r.Missing) + len(r.Empty) + len(r.TypeErrors)
}

// Build evaluates every declared variable against env in declaration
// order. A missing variable is never reported as empty, and an empty one
// is never type-checked.
func Build(s *spec.Spec, env resolver.Environment) *Report {
	r := &Report{
		Status:        StatusSuccess,
		RequiredCount: s.Len(),
		Missing:       []string{},
		Empty:         []string{},
		TypeErrors:    []TypeError{},
	}
	for _, entry := range s.Entries() {
		value, present := env.Lookup(entry.Name)
		switch {
		case !present:
			r.Missing = append(r.Missing, entry.Name)
		case value == "":
			r.Empty = append(r.Empty, entry.Name)
		default:
			if ok, reason := validator.Check(value, entry.Type); !ok {
				r.TypeErrors = append(r.TypeErrors, TypeError{
					Key:         entry.Name,
					Expected:    string(entry.Type),
					ActualValue: value,
					Message:     reason,
				})
			} else {
				r.FoundCount++
			}
		}
	}
	r.AllChecksPassed = r.ErrorCount() == 0
	if !r.AllChecksPassed {
		r.Status = StatusFailure
	}
	return r
}
