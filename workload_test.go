package mlfqsched_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironmancool/mlfqsched"
)

func TestParseWorkload_DecodesAdmissionsAndTuning(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"quantum": 200,
		"aging_threshold": 500,
		"aging_increment": 5,
		"admissions": [
			{"id": 1, "priority": 120, "predicted_burst": 4.5, "arrival_tick": 0, "service_ticks": 10},
			{"id": 2, "priority": 30, "arrival_tick": 5, "service_ticks": 20}
		]
	}`)

	w, err := mlfqsched.ParseWorkload(data)
	require.NoError(t, err)

	assert.Equal(t, int64(200), w.Quantum)
	assert.Equal(t, int64(500), w.AgingThreshold)
	assert.Equal(t, 5, w.AgingIncrement)
	require.Len(t, w.Admissions, 2)
	assert.Equal(t, mlfqsched.ClampPriority(120), w.Admissions[0].Priority)
	assert.Equal(t, 4.5, w.Admissions[0].PredictedBurst)
	assert.Equal(t, int64(5), w.Admissions[1].ArrivalTick)
}

func TestParseWorkload_RejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := mlfqsched.ParseWorkload([]byte(`not json`))
	assert.Error(t, err)
}

func TestWorkload_OptionsFallBackToDefaultsWhenUnset(t *testing.T) {
	t.Parallel()

	w := &mlfqsched.Workload{
		Admissions: []mlfqsched.Admission{{ID: 1, Priority: 10, ArrivalTick: 0, ServiceTicks: 1}},
	}
	opts := w.Options()
	s := mlfqsched.New(append(opts, mlfqsched.WithInterruptLevel(alwaysOff))...)

	a := mlfqsched.NewThread(1, 10, 0)
	s.ReadyToRun(a, 0, nil)
	assert.NotNil(t, s.FindNextToRun(0))
}
