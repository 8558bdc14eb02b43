package mlfqsched

import "encoding/json"

// MinPriority and MaxPriority bound the valid priority range. Aging
// saturates at MaxPriority; it never wraps.
const (
	MinPriority = 0
	MaxPriority = 149
)

// Band boundaries. A priority of l2Floor or above is L2; l1Floor or above is
// L1; everything below l2Floor is L3.
const (
	l2Floor = 50
	l1Floor = 100
)

// Band identifies one of the three disjoint ready-queue bands.
type Band int

const (
	BandL3 Band = iota
	BandL2
	BandL1
)

func (b Band) String() string {
	switch b {
	case BandL1:
		return "L1"
	case BandL2:
		return "L2"
	case BandL3:
		return "L3"
	default:
		return "L?"
	}
}

// Priority is a thread's scheduling priority in [MinPriority, MaxPriority].
// Higher is more urgent. It is a thin, JSON-friendly view over the integer
// that invariant 4 (queue-band membership) is defined against; the integer
// itself, not this type, is the source of truth carried on Thread.
type Priority int

// ClampPriority saturates p into [MinPriority, MaxPriority].
func ClampPriority(p int) Priority {
	switch {
	case p < MinPriority:
		return MinPriority
	case p > MaxPriority:
		return MaxPriority
	default:
		return Priority(p)
	}
}

// Band returns the ready-queue band this priority belongs in.
func (p Priority) Band() Band {
	switch {
	case p >= l1Floor:
		return BandL1
	case p >= l2Floor:
		return BandL2
	default:
		return BandL3
	}
}

func (p Priority) String() string {
	return p.Band().String()
}

type priorityJSON struct {
	Value int    `json:"value"`
	Band  string `json:"band"`
}

// MarshalJSON renders the priority as its numeric value alongside the band
// it currently falls in, for workload files and metrics exports.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(priorityJSON{Value: int(p), Band: p.Band().String()})
}

// UnmarshalJSON accepts either a bare integer or the {value, band} object
// produced by MarshalJSON; the band, if present, is informational only and
// is never trusted over the numeric value.
func (p *Priority) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*p = ClampPriority(n)
		return nil
	}

	var obj priorityJSON
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*p = ClampPriority(obj.Value)
	return nil
}
