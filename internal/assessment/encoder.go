package assessment

import (
	"sort"
	"strings"

	"github.com/VipulG-code/Mental-health-Analysis-of-Social-Media-Users/internal/types"
)

// Ordinal screen-time buckets, shortest to longest. Both questionnaire
// phrasings of the 1-2 hour bucket appear in stored data, so both spellings
// map to the same level.
var timeBuckets = map[string]float64{
	"Less than 30 minutes": 1,
	"30 minutes to 1 hour": 2,
	"1-2 hours":            3,
	"1–2 hours":            3,
	"2-4 hours":            4,
	"More than 2 hours":    4,
	"More than 4 hours":    5,
}

// Signed content-impact levels.
var impactLevels = map[types.ContentImpact]float64{
	types.ImpactPositive: 1,
	types.ImpactNeutral:  0,
	types.ImpactNegative: -1,
}

// Encode expands a response record into a flat feature map for model fit and
// predict. Column names are deterministic: encoding the same record twice
// yields the same map. Optional inputs contribute no column when absent
// except sleep, which defaults to 3 so the base numeric block is always
// fully populated.
func Encode(r *types.ResponseRecord) map[string]float64 {
	features := map[string]float64{
		"mood":   float64(clampLevel(r.Mood)),
		"stress": float64(clampLevel(r.Stress)),
	}

	sleep := defaultSleep
	if r.Sleep != nil {
		sleep = clampLevel(*r.Sleep)
	}
	features["sleep"] = float64(sleep)

	if r.Anxiety {
		features["anxiety"] = 1
	} else {
		features["anxiety"] = 0
	}

	if r.Platform.IsKnown() {
		features[platformColumn(r.Platform)] = 1
	}

	if r.PlatformTime != "" {
		if level, ok := timeBuckets[r.PlatformTime]; ok {
			features["time_bucket"] = level
		}
	}

	if r.ContentImpact != "" {
		if v, ok := impactLevels[r.ContentImpact]; ok {
			features["content_impact"] = v
		}
	}

	return features
}

// platformColumn derives the indicator column name for a platform.
func platformColumn(p types.Platform) string {
	return "platform_" + strings.ToLower(string(p))
}

// SchemaOf returns the sorted union of column names across encoded records.
// The sort keeps the frozen schema stable regardless of corpus order.
func SchemaOf(encoded []map[string]float64) []string {
	seen := make(map[string]struct{})
	for _, features := range encoded {
		for name := range features {
			seen[name] = struct{}{}
		}
	}

	schema := make([]string, 0, len(seen))
	for name := range seen {
		schema = append(schema, name)
	}
	sort.Strings(schema)
	return schema
}

// Project lays a feature map out along a frozen schema: columns missing from
// the record are zero-filled, columns absent from the schema are dropped.
func Project(schema []string, features map[string]float64) []float64 {
	row := make([]float64, len(schema))
	for i, name := range schema {
		row[i] = features[name]
	}
	return row
}
