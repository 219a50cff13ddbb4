package recaptchav3

import (
	"math"
	"strings"

	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/spf13/cast"
)

const (
	minScore = 0
	maxScore = 100
)

// NormalizeScore turns any score candidate into an integer in [0,100].
// Non-numeric input, booleans included, yields DefaultScore. Numeric strings
// are accepted and fractions round to the nearest integer.
func NormalizeScore(raw interface{}) int {
	switch s := raw.(type) {
	case nil, bool:
		return DefaultScore
	case string:
		raw = strings.TrimSpace(s)
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return DefaultScore
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DefaultScore
	}
	return clampScore(int(math.Round(math.Max(minScore, math.Min(maxScore, v)))))
}

func clampScore(score int) int {
	switch {
	case score < minScore:
		return minScore
	case score > maxScore:
		return maxScore
	}
	return score
}

// NormalizeAction defaults an empty action and strips disallowed characters.
// An action with nothing left after stripping falls back to DefaultAction.
func NormalizeAction(action string) string {
	if action == "" {
		action = DefaultAction
	}
	action = verification.FormatAction(action)
	if action == "" {
		return DefaultAction
	}
	return action
}

// Threshold converts a percentage score to the provider scale, 0.00 to 1.00,
// rounded to two decimals.
func Threshold(score int) float64 {
	return math.Round(float64(score)/100*100) / 100
}
