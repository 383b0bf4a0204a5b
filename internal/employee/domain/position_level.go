package domain

import "strings"

// levelRanks maps textual seniority labels to a numeric ordinal used for
// mentor/mentee comparisons. Higher means more senior.
var levelRanks = map[string]int{
	"intern":     1,
	"apprentice": 1,
	"trainee":    1,
	"junior":     2,
	"associate":  2,
	"specialist": 3,
	"mid":        3,
	"mid-level":  3,
	"mid level":  3,
	"consultant": 3,
	"senior":     4,
	"lead":       5,
	"manager":    5,
	"principal":  6,
	"director":   6,
	"head":       6,
	"vp":         7,
	"executive":  7,
	"chief":      8,
}

const DefaultPositionLevel = 1

// DerivePositionLevel maps a seniority label to its ordinal, defaulting to
// DefaultPositionLevel when the label is empty or unrecognized.
func DerivePositionLevel(label string) int {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return DefaultPositionLevel
	}
	if rank, ok := levelRanks[normalized]; ok {
		return rank
	}
	return DefaultPositionLevel
}
