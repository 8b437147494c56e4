package scan

import (
	"encoding/json"
	"strings"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/domain"
	"gorm.io/datatypes"
)

// Normalize turns a raw submission into a canonical MatchRecord. It never
// fails: numeric fields coerce to 0 on bad input, bounded fields clamp into
// range, strings are trimmed, a blank quantifier defaults to team practice,
// and a non-list path trace becomes an empty one. Strict correctness is
// traded for ingestion robustness; callers wanting rejection run Validate
// first.
func Normalize(raw map[string]any) *domain.MatchRecord {
	rec := &domain.MatchRecord{
		TeamNumber:  intField(raw, "teamNumber"),
		MatchNumber: intField(raw, "matchNumber"),
		CompCode:    strings.TrimSpace(asString(raw["comp_code"])),
		ScoutName:   strings.TrimSpace(asString(raw["name"])),
		Comment:     truncate(strings.TrimSpace(asString(raw["comment"])), 256),

		StartPos:   clampField(raw, "startPos", 0, 4),
		MissedAuto: clampField(raw, "missed_auto", 0, 1),

		AutoLeave:     countField(raw, "autoLeave"),
		AutoNet:       countField(raw, "autoNet"),
		AutoProcessor: countField(raw, "autoProcessor"),
		AutoRemoved:   countField(raw, "autoRemoved"),
		AutoL1:        countField(raw, "autoL1"),
		AutoL2:        countField(raw, "autoL2"),
		AutoL3:        countField(raw, "autoL3"),
		AutoL4:        countField(raw, "autoL4"),

		TeleNet:       countField(raw, "telenet"),
		TeleProcessor: countField(raw, "teleProcessor"),
		TeleRemoved:   countField(raw, "teleRemoved"),
		TeleL1:        countField(raw, "teleL1"),
		TeleL2:        countField(raw, "teleL2"),
		TeleL3:        countField(raw, "teleL3"),
		TeleL4:        countField(raw, "teleL4"),

		EndClimb:       clampField(raw, "endClimb", 0, 4),
		DriverRanking:  clampField(raw, "driverRanking", 1, 5),
		DefenseRanking: clampField(raw, "defenseRanking", 1, 5),

		IsBroken:   clampField(raw, "isBroken", 0, 1),
		IsDisabled: clampField(raw, "isDisabled", 0, 1),
		IsTipped:   clampField(raw, "isTipped", 0, 1),

		AutoPath: pathField(raw, "autoPath"),
	}

	rec.Quantifier = domain.Quantifier(strings.TrimSpace(asString(raw["quantifier"])))
	if rec.Quantifier == "" {
		rec.Quantifier = domain.QuantifierPractice
	}

	return rec
}

// intField coerces to integer, defaulting to 0 on any failure.
func intField(raw map[string]any, key string) int {
	n, _ := asInt(raw[key])
	return n
}

// countField is intField floored at zero; scored-action counts are never
// negative.
func countField(raw map[string]any, key string) int {
	n := intField(raw, key)
	if n < 0 {
		return 0
	}
	return n
}

// clampField clamps a present value into [min, max]. Absent keys stay 0
// rather than being pulled up to min, so an unscored field is
// distinguishable from a low score.
func clampField(raw map[string]any, key string, min, max int) int {
	if _, present := raw[key]; !present {
		return 0
	}
	n := intField(raw, key)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

func pathField(raw map[string]any, key string) datatypes.JSON {
	empty := datatypes.JSON([]byte("[]"))
	v, present := raw[key]
	if !present {
		return empty
	}
	list, ok := v.([]any)
	if !ok {
		return empty
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return empty
	}
	return datatypes.JSON(encoded)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
