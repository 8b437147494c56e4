// Package scan validates and normalizes raw scanner submissions before they
// reach the ingest pipeline. A submission is the generic JSON object produced
// by the QR scanner page, so everything here works over map[string]any and
// tolerates missing or badly typed keys.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

type boundedField struct {
	key string
	min int
	max int
}

var boundedFields = []boundedField{
	{"startPos", 0, 4},
	{"driverRanking", 1, 5},
	{"defenseRanking", 1, 5},
	{"endClimb", 0, 4},
}

var booleanFields = []string{"isBroken", "isDisabled", "isTipped"}

var requiredFields = []struct {
	key  string
	name string
}{
	{"teamNumber", "Team number"},
	{"matchNumber", "Match number"},
	{"name", "Scout name"},
	{"comp_code", "Competition code"},
}

// Validate checks a raw submission and returns whether it is acceptable
// along with every violation found. All rules run independently so the
// client gets the complete error set in one round-trip. Malformed input is
// reported, never panicked on.
func Validate(raw map[string]any) (bool, []string) {
	errs := []string{}

	for _, f := range requiredFields {
		v, ok := raw[f.key]
		if !ok || strings.TrimSpace(asString(v)) == "" {
			errs = append(errs, fmt.Sprintf("%s is required", f.name))
		}
	}

	if n, ok := asInt(raw["teamNumber"]); !ok {
		errs = append(errs, "Team number must be a valid integer")
	} else if n <= 0 || n > 99999 {
		errs = append(errs, "Team number must be between 1 and 99999")
	}

	if n, ok := asInt(raw["matchNumber"]); !ok {
		errs = append(errs, "Match number must be a valid integer")
	} else if n <= 0 || n > 999 {
		errs = append(errs, "Match number must be between 1 and 999")
	}

	name := strings.TrimSpace(asString(raw["name"]))
	if len(name) < 2 {
		errs = append(errs, "Scout name must be at least 2 characters")
	} else if len(name) > 32 {
		errs = append(errs, "Scout name cannot exceed 32 characters")
	}

	compCode := strings.TrimSpace(asString(raw["comp_code"]))
	if len(compCode) < 3 {
		errs = append(errs, "Competition code must be at least 3 characters")
	} else if len(compCode) > 16 {
		errs = append(errs, "Competition code cannot exceed 16 characters")
	}

	for _, f := range boundedFields {
		v, present := raw[f.key]
		if !present {
			continue
		}
		n, ok := asInt(v)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s must be a valid integer", f.key))
			continue
		}
		if n < f.min || n > f.max {
			errs = append(errs, fmt.Sprintf("%s must be between %d and %d", f.key, f.min, f.max))
		}
	}

	for _, key := range booleanFields {
		v, present := raw[key]
		if !present {
			continue
		}
		if n, ok := asInt(v); !ok || (n != 0 && n != 1) {
			errs = append(errs, fmt.Sprintf("%s must be 0 or 1", key))
		}
	}

	return len(errs) == 0, errs
}

// asInt coerces the loosely typed values JSON decoding produces. Floats are
// accepted only when they carry no fractional part.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}
