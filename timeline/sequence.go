// Package timeline runs fixed sequences of timed phases advanced by the
// simulation tick.
package timeline

import "time"

// Phase identifies one segment of a sequence. Callers define their own
// constants starting at 1; Inactive is shared by every sequence.
type Phase uint8

const Inactive Phase = 0

// Segment is a phase and how long it lasts.
type Segment struct {
	Phase  Phase
	Length time.Duration
}

// Transition is a phase boundary crossed during Advance.
type Transition struct {
	From, To Phase
	// Overshoot is how far past the boundary the sequence already is.
	Overshoot time.Duration
}

// Sequence is a latch plus the explicit phase and time-in-phase of one run.
// The zero value is an inactive sequence with no segments.
type Sequence struct {
	segments []Segment
	index    int
	inPhase  time.Duration
	elapsed  time.Duration
	running  bool
}

// New builds an inactive sequence. Zero-length segments are skipped when
// reached.
func New(segments ...Segment) Sequence {
	return Sequence{segments: append([]Segment(nil), segments...)}
}

// Start begins the first phase. It returns false, and does nothing, while a
// run is already in progress.
func (s *Sequence) Start() bool {
	if s.running || len(s.segments) == 0 {
		return false
	}
	s.running = true
	s.index = 0
	s.inPhase = 0
	s.elapsed = 0
	return true
}

// Cancel ends the run immediately without reporting transitions.
func (s *Sequence) Cancel() {
	s.running = false
	s.index = 0
	s.inPhase = 0
	s.elapsed = 0
}

func (s *Sequence) Running() bool { return s.running }

// Phase returns the current phase, or Inactive.
func (s *Sequence) Phase() Phase {
	if !s.running {
		return Inactive
	}
	return s.segments[s.index].Phase
}

// InPhase is the time spent in the current phase.
func (s *Sequence) InPhase() time.Duration { return s.inPhase }

// Elapsed is the time since Start.
func (s *Sequence) Elapsed() time.Duration { return s.elapsed }

// Total is the summed length of all segments.
func (s *Sequence) Total() time.Duration {
	var total time.Duration
	for _, seg := range s.segments {
		total += seg.Length
	}
	return total
}

// Advance moves the run forward by dt and returns every boundary crossed, in
// order. The last transition of a finished run has To == Inactive.
func (s *Sequence) Advance(dt time.Duration) []Transition {
	if !s.running {
		return nil
	}
	s.elapsed += dt
	s.inPhase += dt

	var crossed []Transition
	for s.running && s.inPhase >= s.segments[s.index].Length {
		from := s.segments[s.index].Phase
		over := s.inPhase - s.segments[s.index].Length
		s.index++
		s.inPhase = over
		if s.index >= len(s.segments) {
			s.running = false
			s.index = 0
			crossed = append(crossed, Transition{From: from, To: Inactive, Overshoot: over})
			break
		}
		crossed = append(crossed, Transition{From: from, To: s.segments[s.index].Phase, Overshoot: over})
	}
	return crossed
}

// Entered reports whether the transitions include entering phase p.
func Entered(ts []Transition, p Phase) bool {
	for _, t := range ts {
		if t.To == p {
			return true
		}
	}
	return false
}
