package mlfqsched_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmancool/mlfqsched"
)

func TestClampPriority(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input int
		want  mlfqsched.Priority
	}{
		"below range clamps to min": {input: -10, want: mlfqsched.MinPriority},
		"above range clamps to max": {input: 200, want: mlfqsched.MaxPriority},
		"in range is unchanged":     {input: 87, want: 87},
		"exactly min":               {input: 0, want: 0},
		"exactly max":               {input: 149, want: 149},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := mlfqsched.ClampPriority(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_Band(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		priority int
		want     mlfqsched.Band
	}{
		"zero is L3": {priority: 0, want: mlfqsched.BandL3},
		"49 is L3":   {priority: 49, want: mlfqsched.BandL3},
		"50 is L2":   {priority: 50, want: mlfqsched.BandL2},
		"99 is L2":   {priority: 99, want: mlfqsched.BandL2},
		"100 is L1":  {priority: 100, want: mlfqsched.BandL1},
		"149 is L1":  {priority: 149, want: mlfqsched.BandL1},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := mlfqsched.ClampPriority(tt.priority)
			assert.Equal(t, tt.want, p.Band())
		})
	}
}

func TestPriorityJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	p := mlfqsched.ClampPriority(87)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":87,"band":"L2"}`, string(b))

	var got mlfqsched.Priority
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, p, got)
}

func TestPriorityJSON_UnmarshalBareInt(t *testing.T) {
	t.Parallel()

	var p mlfqsched.Priority
	require.NoError(t, json.Unmarshal([]byte(`120`), &p))
	assert.Equal(t, mlfqsched.ClampPriority(120), p)
	assert.Equal(t, mlfqsched.BandL1, p.Band())
}
