package mlfqsched

import "encoding/json"

// Admission describes a single thread admission in a Workload.
type Admission struct {
	ID             int     `json:"id"`
	Priority       Priority `json:"priority"`
	PredictedBurst float64 `json:"predicted_burst"`
	ArrivalTick    int64   `json:"arrival_tick"`

	// ServiceTicks is how many ticks this thread actually needs to run
	// before terminating, for the simulation driver; it is not part of
	// the scheduler's own data model.
	ServiceTicks int64 `json:"service_ticks"`
}

// Workload is a JSON-decodable description of a simulation run for
// cmd/mlfqsim: a set of thread admissions plus scheduler tuning.
type Workload struct {
	Quantum        int64       `json:"quantum,omitempty"`
	AgingThreshold int64       `json:"aging_threshold,omitempty"`
	AgingIncrement int         `json:"aging_increment,omitempty"`
	Admissions     []Admission `json:"admissions"`
}

// ParseWorkload decodes a Workload from JSON.
func ParseWorkload(data []byte) (*Workload, error) {
	var w Workload
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Options returns the Quantum/AgingThreshold/AgingIncrement scheduler
// options described in this workload, falling back to the package
// defaults for any field left at zero.
func (w *Workload) Options() []Option {
	var opts []Option
	if w.Quantum > 0 {
		opts = append(opts, WithQuantum(w.Quantum))
	}
	if w.AgingThreshold > 0 {
		opts = append(opts, WithAgingThreshold(w.AgingThreshold))
	}
	if w.AgingIncrement > 0 {
		opts = append(opts, WithAgingIncrement(w.AgingIncrement))
	}
	return opts
}
