package md2deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodePlan parses model output as JSON and validates it against the
// slide schema. It is a decode-or-fail step: either a fully validated
// plan comes back, or an ErrPlanInvalid describing the first violation.
// Nothing partially valid flows downstream.
func decodePlan(raw string) (*SlidePlan, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: model returned empty output", ErrPlanInvalid)
	}

	var plan SlidePlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrPlanInvalid, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// sometimes add despite instructions, and trims whitespace.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:] // drop opening fence with optional language tag
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
