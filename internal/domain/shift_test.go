package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRequestTime(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		want   *GuidanceReason
	}{
		{name: "exactly 21:00 is changeover", hour: 21, minute: 0, want: reasonPtr(GuidanceShiftChangeover)},
		{name: "21:15 is changeover", hour: 21, minute: 15, want: reasonPtr(GuidanceShiftChangeover)},
		{name: "21:29 is changeover", hour: 21, minute: 29, want: reasonPtr(GuidanceShiftChangeover)},
		{name: "21:30 is ordinary second shift", hour: 21, minute: 30, want: nil},
		{name: "22:00 is ordinary second shift", hour: 22, minute: 0, want: nil},
		{name: "18:00 is before opening", hour: 18, minute: 0, want: reasonPtr(GuidanceBeforeOpening)},
		{name: "19:29 is before opening", hour: 19, minute: 29, want: reasonPtr(GuidanceBeforeOpening)},
		{name: "19:30 is ordinary first shift", hour: 19, minute: 30, want: nil},
		{name: "20:30 is ordinary first shift", hour: 20, minute: 30, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRequestTime(tt.hour, tt.minute)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, got.Reason)
		})
	}
}

func TestTimeGuidanceSuggestedTime(t *testing.T) {
	g := ClassifyRequestTime(21, 5)
	require.NotNil(t, g)
	assert.Equal(t, "21:30", g.SuggestedTime())

	g = ClassifyRequestTime(12, 0)
	require.NotNil(t, g)
	assert.Equal(t, "19:30", g.SuggestedTime())
}

func reasonPtr(r GuidanceReason) *GuidanceReason {
	return &r
}
