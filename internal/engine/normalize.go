package engine

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/fundlens/readiness-cli/internal/model"
)

// normalizeFunc converts one raw answer into a scored answer. The
// second return is false when the value is absent or unparseable, in
// which case the answer is excluded from aggregation.
type normalizeFunc func(q model.Question, raw any) (model.ScoredAnswer, bool)

// normalizers dispatches per question type. A tagged lookup table, not
// a hierarchy: each entry is a pure function.
var normalizers = map[model.QuestionType]normalizeFunc{
	model.TypeChoice:     normalizeChoice,
	model.TypePercentage: normalizeNumeric,
	model.TypeNumber:     normalizeNumeric,
	model.TypeScale:      normalizeScale,
	model.TypeBoolean:    normalizeBoolean,
}

// Normalize converts a raw answer into a ScoredAnswer for its question.
// Malformed values never error; they are simply excluded.
func Normalize(q model.Question, raw any) (model.ScoredAnswer, bool) {
	if raw == nil {
		return model.ScoredAnswer{}, false
	}
	fn, ok := normalizers[q.Type]
	if !ok {
		return model.ScoredAnswer{}, false
	}
	return fn(q, raw)
}

func normalizeChoice(q model.Question, raw any) (model.ScoredAnswer, bool) {
	label, ok := asString(raw)
	if !ok {
		return model.ScoredAnswer{}, false
	}
	opt, ok := q.OptionByLabel(label)
	if !ok {
		return model.ScoredAnswer{}, false
	}
	return model.ScoredAnswer{QuestionID: q.ID, Score: opt.Score, Tier: opt.Tier}, true
}

func normalizeNumeric(q model.Question, raw any) (model.ScoredAnswer, bool) {
	v, ok := asFloat(raw)
	if !ok || v < 0 {
		return model.ScoredAnswer{}, false
	}

	if q.CriticalThreshold == nil {
		// Unconstrained numeric questions carry a caller-supplied score;
		// the engine does not invent semantics beyond clamping.
		score := clamp(v, 0, 100)
		return model.ScoredAnswer{QuestionID: q.ID, Score: score, Tier: tierForScore(score)}, true
	}

	t := *q.CriticalThreshold
	if v >= t {
		return model.ScoredAnswer{QuestionID: q.ID, Score: 30, Tier: model.TierHigh}, true
	}

	score := math.Max(70, 100-(v/t)*40)
	score = math.Min(score, 100)
	tier := model.TierLow
	if v > 0.7*t {
		tier = model.TierMedium
	}
	return model.ScoredAnswer{QuestionID: q.ID, Score: score, Tier: tier}, true
}

func normalizeScale(q model.Question, raw any) (model.ScoredAnswer, bool) {
	v, ok := asFloat(raw)
	if !ok || v < 1 || v > 5 {
		return model.ScoredAnswer{}, false
	}

	tier := model.TierHigh
	switch {
	case v >= 4:
		tier = model.TierLow
	case v >= 3:
		tier = model.TierMedium
	}
	return model.ScoredAnswer{QuestionID: q.ID, Score: v / 5 * 100, Tier: tier}, true
}

// normalizeBoolean maps yes to (100, low) and no to (20, high). The
// catalog convention is that "yes" is always the favorable answer;
// Catalog.Validate enforces the convention's preconditions at load.
func normalizeBoolean(q model.Question, raw any) (model.ScoredAnswer, bool) {
	var yes bool
	switch v := raw.(type) {
	case bool:
		yes = v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "y", "true":
			yes = true
		case "no", "n", "false":
			yes = false
		default:
			return model.ScoredAnswer{}, false
		}
	default:
		return model.ScoredAnswer{}, false
	}

	if yes {
		return model.ScoredAnswer{QuestionID: q.ID, Score: 100, Tier: model.TierLow}, true
	}
	return model.ScoredAnswer{QuestionID: q.ID, Score: 20, Tier: model.TierHigh}, true
}

// tierForScore derives a tier from a 0-100 score such that the tier
// never improves as the score drops.
func tierForScore(score float64) model.RiskTier {
	switch {
	case score >= 70:
		return model.TierLow
	case score >= 40:
		return model.TierMedium
	case score >= 20:
		return model.TierHigh
	default:
		return model.TierCritical
	}
}

func asString(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
