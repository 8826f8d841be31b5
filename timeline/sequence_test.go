package timeline

import (
	"testing"
	"time"
)

const (
	telegraph Phase = iota + 1
	active
	burst
)

func reversal() Sequence {
	return New(
		Segment{Phase: telegraph, Length: 1600 * time.Millisecond},
		Segment{Phase: active, Length: 3 * time.Second},
		Segment{Phase: burst, Length: 2 * time.Second},
	)
}

func TestSequencePhases(t *testing.T) {
	s := reversal()
	if !s.Start() {
		t.Fatal("Start() = false on idle sequence")
	}

	tick := 100 * time.Millisecond
	want := map[int]Phase{
		0: telegraph, 15: telegraph, 16: active, 45: active, 46: burst, 65: burst, 66: Inactive,
	}
	for i := 0; i <= 66; i++ {
		if i > 0 {
			s.Advance(tick)
		}
		if p, ok := want[i]; ok && s.Phase() != p {
			t.Errorf("t=%v phase = %v, want %v", time.Duration(i)*tick, s.Phase(), p)
		}
	}
	if s.Running() {
		t.Error("sequence still running after its total length")
	}
}

func TestSequenceLatch(t *testing.T) {
	s := reversal()
	s.Start()
	s.Advance(time.Second)
	if s.Start() {
		t.Error("Start() while running should be rejected")
	}
	if s.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v after rejected restart, want 1s", s.Elapsed())
	}
}

func TestAdvanceCrossesSeveralBoundaries(t *testing.T) {
	s := reversal()
	s.Start()
	got := s.Advance(5 * time.Second)
	if len(got) != 2 {
		t.Fatalf("got %d transitions, want 2", len(got))
	}
	if got[0].To != active || got[1].To != burst {
		t.Errorf("transitions = %+v", got)
	}
	if got[1].Overshoot != 400*time.Millisecond {
		t.Errorf("overshoot = %v, want 400ms", got[1].Overshoot)
	}
	if s.InPhase() != 400*time.Millisecond {
		t.Errorf("InPhase() = %v, want 400ms", s.InPhase())
	}

	end := s.Advance(10 * time.Second)
	if !Entered(end, Inactive) || s.Running() {
		t.Errorf("expected the run to finish, got %+v", end)
	}
}

func TestCancel(t *testing.T) {
	s := reversal()
	s.Start()
	s.Advance(2 * time.Second)
	s.Cancel()

	if s.Running() || s.Phase() != Inactive {
		t.Error("Cancel() left the sequence running")
	}
	if got := s.Advance(10 * time.Second); got != nil {
		t.Errorf("Advance after Cancel reported %+v", got)
	}
	if !s.Start() {
		t.Error("Start() after Cancel should be accepted")
	}
}

func TestZeroValue(t *testing.T) {
	var s Sequence
	if s.Start() {
		t.Error("zero sequence should not start")
	}
	if s.Phase() != Inactive {
		t.Error("zero sequence phase should be Inactive")
	}
}

func TestZeroLengthSegment(t *testing.T) {
	s := New(Segment{Phase: telegraph}, Segment{Phase: active, Length: time.Second})
	s.Start()
	got := s.Advance(0)
	if !Entered(got, active) {
		t.Errorf("zero-length phase was not skipped: %+v", got)
	}
}
