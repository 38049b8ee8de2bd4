package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteria_Matches(t *testing.T) {
	record := JobRecord{Sector: "Tech", Size: "Large", Rating: 4.0}

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     bool
	}{
		{
			name:     "all conditions satisfied",
			criteria: NewFilterCriteria([]string{"Tech", "Finance"}, []string{"Large"}, 3.0),
			want:     true,
		},
		{
			name:     "rating threshold is inclusive",
			criteria: NewFilterCriteria([]string{"Tech"}, []string{"Large"}, 4.0),
			want:     true,
		},
		{
			name:     "rating below threshold",
			criteria: NewFilterCriteria([]string{"Tech"}, []string{"Large"}, 4.5),
			want:     false,
		},
		{
			name:     "sector not selected",
			criteria: NewFilterCriteria([]string{"Finance"}, []string{"Large"}, 0),
			want:     false,
		},
		{
			name:     "size not selected",
			criteria: NewFilterCriteria([]string{"Tech"}, []string{"Small"}, 0),
			want:     false,
		},
		{
			name:     "empty sector selection matches nothing",
			criteria: NewFilterCriteria(nil, []string{"Large"}, 0),
			want:     false,
		},
		{
			name:     "empty size selection matches nothing",
			criteria: NewFilterCriteria([]string{"Tech"}, nil, 0),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(record))
		})
	}
}

func TestFilterCriteria_MissingRatingNeverMatches(t *testing.T) {
	// Cleaned records always carry a rating, but a missing one must not
	// sneak past the threshold: NaN comparisons are false.
	record := JobRecord{Sector: "Tech", Size: "Large", Rating: Missing()}
	criteria := NewFilterCriteria([]string{"Tech"}, []string{"Large"}, 0)
	assert.False(t, criteria.Matches(record))
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(Missing()))
	assert.False(t, IsMissing(0))
	assert.False(t, IsMissing(-1))
}

func TestJobRecord_HasSalary(t *testing.T) {
	assert.True(t, JobRecord{AvgSalary: 100000}.HasSalary())
	assert.False(t, JobRecord{AvgSalary: Missing()}.HasSalary())
}
