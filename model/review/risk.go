package review

import (
	"fmt"
	"strings"
)

// RiskLevel classifies how dangerous a proposed treatment is. Levels are
// ordered: Low < Medium < High < Critical.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

var riskOrder = map[RiskLevel]int{
	RiskLow:      0,
	RiskMedium:   1,
	RiskHigh:     2,
	RiskCritical: 3,
}

// Levels returns all risk levels in ascending order of severity.
func Levels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}

// ParseRiskLevel converts a raw string (case-insensitive) into a RiskLevel.
func ParseRiskLevel(raw string) (RiskLevel, error) {
	level := RiskLevel(strings.ToLower(strings.TrimSpace(raw)))
	if !level.IsValid() {
		return "", fmt.Errorf("unknown risk level: %q", raw)
	}
	return level, nil
}

// IsValid reports whether the level is one of the defined constants.
func (r RiskLevel) IsValid() bool {
	_, ok := riskOrder[r]
	return ok
}

// AtLeast reports whether the level is equal to or more severe than other.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return riskOrder[r] >= riskOrder[other]
}
