package dataset

import (
	"regexp"
	"strconv"

	"github.com/jobdeck/jobdeck/internal/model"
)

var (
	firstNumberRe = regexp.MustCompile(`\d+`)
	salaryRangeRe = regexp.MustCompile(`\$(\d+)K-\$(\d+)K`)
)

// ExtractSalary derives the salary fields from a raw estimate string such
// as "$80K-$120K (Glassdoor est.)". Values are in thousands in the source
// and scaled to dollars here.
//
// The minimum comes from the first digit run anywhere in the text; the
// maximum from the second capture of the anchored $NK-$NK range. The two
// rules are intentionally different: the minimum is unanchored, so a
// digit appearing before the range (or in an annotation) wins over the
// range's true lower bound. Without an anchored range match the maximum
// and average are both missing, even when the first-number rule found
// something.
func ExtractSalary(estimate string) (minSalary, maxSalary, avgSalary float64) {
	minSalary, maxSalary = model.Missing(), model.Missing()

	if m := firstNumberRe.FindString(estimate); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			minSalary = v * 1000
		}
	}

	if m := salaryRangeRe.FindStringSubmatch(estimate); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			maxSalary = v * 1000
		}
	}

	avgSalary = (minSalary + maxSalary) / 2
	return minSalary, maxSalary, avgSalary
}
