package workflow

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Phases maps every phase to its status. It is an array indexed by sequence
// position, so the mapping is total and can never hold more or fewer than
// PhaseCount entries.
type Phases [PhaseCount]PhaseStatus

// Get returns the status of p.
func (ps Phases) Get(p Phase) PhaseStatus { return ps[p.Index()] }

// Set changes the status of p.
func (ps *Phases) Set(p Phase, s PhaseStatus) {
	s.mustIndex()
	ps[p.Index()] = s
}

// Count returns how many phases currently hold status s.
func (ps Phases) Count(s PhaseStatus) int {
	n := 0
	for _, v := range ps {
		if v == s {
			n++
		}
	}
	return n
}

// Keyed returns the mapping keyed by phase key, the shape used on the wire.
func (ps Phases) Keyed() map[string]string {
	out := make(map[string]string, PhaseCount)
	for _, p := range Sequence() {
		out[p.String()] = ps.Get(p).String()
	}
	return out
}

func phasesFromKeyed(m map[string]string) (Phases, error) {
	var ps Phases
	if len(m) != PhaseCount {
		return ps, fmt.Errorf("phases must contain exactly %d entries, got %d", PhaseCount, len(m))
	}
	seen := 0
	for k, v := range m {
		p, err := ParsePhase(k)
		if err != nil {
			return ps, err
		}
		s, err := ParseStatus(v)
		if err != nil {
			return ps, fmt.Errorf("phase %s: %w", p, err)
		}
		ps.Set(p, s)
		seen |= 1 << p.Index()
	}
	if seen != 1<<PhaseCount-1 {
		return ps, fmt.Errorf("phases must contain every phase exactly once")
	}
	return ps, nil
}

// MarshalJSON encodes the phases as an object keyed by phase.
func (ps Phases) MarshalJSON() ([]byte, error) {
	return json.Marshal(ps.Keyed())
}

// UnmarshalJSON rejects objects with missing or unknown phases.
func (ps *Phases) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := phasesFromKeyed(m)
	if err != nil {
		return err
	}
	*ps = parsed
	return nil
}

// MarshalBSON encodes the phases as an embedded document in sequence order.
func (ps Phases) MarshalBSON() ([]byte, error) {
	doc := make(bson.D, 0, PhaseCount)
	for _, p := range Sequence() {
		doc = append(doc, bson.E{Key: p.String(), Value: ps.Get(p).String()})
	}
	return bson.Marshal(doc)
}

// UnmarshalBSON applies the same completeness rules as UnmarshalJSON.
func (ps *Phases) UnmarshalBSON(data []byte) error {
	var m map[string]string
	if err := bson.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := phasesFromKeyed(m)
	if err != nil {
		return err
	}
	*ps = parsed
	return nil
}
