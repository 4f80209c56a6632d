package reveal

import (
	"time"

	"github.com/google/uuid"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// Reveal is one run of the idle -> strip-built -> animating -> settled machine.
// It is not safe for concurrent use; owners serialize access.
type Reveal struct {
	ID        uuid.UUID     `json:"id"`
	Phase     Phase         `json:"phase"`
	Strip     Strip         `json:"strip"`
	Offset    float64       `json:"targetOffset"`
	Duration  time.Duration `json:"-"`
	SpinMs    int64         `json:"spinMs"`
	SpunAt    *time.Time    `json:"spunAt,omitempty"`
	SettledAt *time.Time    `json:"settledAt,omitempty"`
}

// New returns an idle reveal.
func New(duration time.Duration) *Reveal {
	return &Reveal{ID: uuid.New(), Phase: PhaseIdle, Duration: duration, SpinMs: duration.Milliseconds()}
}

// Load attaches a built strip. It moves idle -> strip-built.
func (r *Reveal) Load(strip Strip) error {
	phase, err := r.Phase.transition(PhaseStripBuilt)
	if err != nil {
		return err
	}
	r.Phase = phase
	r.Strip = strip
	return nil
}

// Spin computes the scroll target for layout and moves strip-built -> animating.
func (r *Reveal) Spin(layout Layout, now time.Time) (float64, error) {
	phase, err := r.Phase.transition(PhaseAnimating)
	if err != nil {
		return 0, err
	}
	r.Phase = phase
	r.Offset = ScrollTarget(layout, r.Strip.WinIndex)
	r.SpunAt = &now
	return r.Offset, nil
}

// Settle moves animating -> settled on the first completion signal.
// A repeated signal is a no-op: it returns the winner with settledNow false.
func (r *Reveal) Settle(now time.Time) (winner domain.Item, settledNow bool, err error) {
	if r.Phase == PhaseSettled {
		return r.Strip.Winner, false, nil
	}
	phase, err := r.Phase.transition(PhaseSettled)
	if err != nil {
		return domain.Item{}, false, err
	}
	r.Phase = phase
	r.SettledAt = &now
	return r.Strip.Winner, true, nil
}

// State projects the reveal onto the per-player tagged union.
func (r *Reveal) State() PlayerState {
	switch r.Phase {
	case PhaseAnimating:
		return Spinning{TargetOffset: r.Offset}
	case PhaseSettled:
		return Settled{Winner: r.Strip.Winner}
	default:
		return Idle{}
	}
}

// Snapshot returns a copy safe to hand to other goroutines.
func (r *Reveal) Snapshot() Reveal {
	c := *r
	c.Strip.Items = append([]domain.Item(nil), r.Strip.Items...)
	return c
}
