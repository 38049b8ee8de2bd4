package dataset

import (
	"testing"

	"github.com/jobdeck/jobdeck/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name       string
		estimate   string
		wantMin    float64
		wantMax    float64
		wantAvg    float64
		allMissing bool
	}{
		{
			name:     "glassdoor estimate",
			estimate: "$80K-$120K (Glassdoor est.)",
			wantMin:  80000,
			wantMax:  120000,
			wantAvg:  100000,
		},
		{
			name:     "bare range",
			estimate: "$50K-$90K",
			wantMin:  50000,
			wantMax:  90000,
			wantAvg:  70000,
		},
		{
			name:       "no digits at all",
			estimate:   "Competitive salary",
			allMissing: true,
		},
		{
			name:       "empty string",
			estimate:   "",
			allMissing: true,
		},
		{
			name:     "digits without anchored range",
			estimate: "Up to 95K",
			wantMin:  95000,
			wantMax:  model.Missing(),
			wantAvg:  model.Missing(),
		},
		{
			name:     "hourly estimate has no anchored range",
			estimate: "$24-$38 Per Hour (Glassdoor est.)",
			wantMin:  24000,
			wantMax:  model.Missing(),
			wantAvg:  model.Missing(),
		},
		{
			// The minimum is the first number anywhere, not the range's
			// lower bound.
			name:     "leading digit outside the range wins the minimum",
			estimate: "2 openings: $80K-$120K",
			wantMin:  2000,
			wantMax:  120000,
			wantAvg:  61000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax, gotAvg := ExtractSalary(tt.estimate)

			if tt.allMissing {
				assert.True(t, model.IsMissing(gotMin), "min should be missing")
				assert.True(t, model.IsMissing(gotMax), "max should be missing")
				assert.True(t, model.IsMissing(gotAvg), "avg should be missing")
				return
			}

			assertValue(t, tt.wantMin, gotMin, "min")
			assertValue(t, tt.wantMax, gotMax, "max")
			assertValue(t, tt.wantAvg, gotAvg, "avg")
		})
	}
}

func TestExtractSalary_MaxIsExactUpperBound(t *testing.T) {
	// For any anchored $aK-$bK estimate the max is b*1000 exactly.
	cases := map[string]float64{
		"$37K-$66K (Glassdoor est.)":   66000,
		"$128K-$201K (Glassdoor est.)": 201000,
		"$1K-$2K":                      2000,
	}
	for estimate, want := range cases {
		_, gotMax, _ := ExtractSalary(estimate)
		assert.InDelta(t, want, gotMax, 0, "estimate %q", estimate)
	}
}

func assertValue(t *testing.T, want, got float64, what string) {
	t.Helper()
	if model.IsMissing(want) {
		assert.True(t, model.IsMissing(got), "%s should be missing, got %v", what, got)
		return
	}
	assert.InDelta(t, want, got, 1e-9, what)
}
