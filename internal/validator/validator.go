package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/envsanity/envcheck/internal/spec"
)

// Check reports whether value conforms to the declared type. The reason is
// empty on conformance and human-readable on rejection. Callers guarantee
// the value is non-empty.
func Check(value string, expected spec.Type) (bool, string) {
	switch expected {
	case spec.TypeString:
		return true, ""
	case spec.TypeInteger:
		// Strict integers: reject decimal points before parsing so the
		// reason distinguishes "1.0" from plain garbage.
		if strings.Contains(value, ".") {
			return false, fmt.Sprintf("value %q contains a decimal point, expected a strict integer", value)
		}
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return false, fmt.Sprintf("value %q cannot be converted to type integer", value)
		}
		return true, ""
	case spec.TypeFloat:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return false, fmt.Sprintf("value %q cannot be converted to type float", value)
		}
		return true, ""
	case spec.TypeBoolean:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "false", "1", "0":
			return true, ""
		}
		return false, fmt.Sprintf("value %q is not a valid boolean (expected true/false/1/0)", value)
	}
	return false, fmt.Sprintf("unknown expected type %q", expected)
}
