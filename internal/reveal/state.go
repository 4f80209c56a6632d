package reveal

import (
	"encoding/json"
	"fmt"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// Phase is the lifecycle step of a single reveal.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseStripBuilt Phase = "strip-built"
	PhaseAnimating  Phase = "animating"
	PhaseSettled    Phase = "settled"
)

var nextPhase = map[Phase]Phase{
	PhaseIdle:       PhaseStripBuilt,
	PhaseStripBuilt: PhaseAnimating,
	PhaseAnimating:  PhaseSettled,
}

// CanTransition reports whether to directly follows p.
func (p Phase) CanTransition(to Phase) bool {
	return nextPhase[p] == to
}

func (p Phase) transition(to Phase) (Phase, error) {
	if !p.CanTransition(to) {
		return p, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, p, to)
	}
	return to, nil
}

// StateKind discriminates PlayerState variants.
type StateKind string

const (
	StateIdle     StateKind = "idle"
	StateSpinning StateKind = "spinning"
	StateSettled  StateKind = "settled"
)

// PlayerState is the per-player view of a reveal: Idle, Spinning or Settled.
// The interface is sealed; only this package provides variants.
type PlayerState interface {
	Kind() StateKind
	isPlayerState()
}

// Idle means no strip is animating for the player.
type Idle struct{}

// Spinning carries the translation the strip is animating towards.
type Spinning struct {
	TargetOffset float64
}

// Settled carries the revealed winner.
type Settled struct {
	Winner domain.Item
}

func (Idle) Kind() StateKind     { return StateIdle }
func (Spinning) Kind() StateKind { return StateSpinning }
func (Settled) Kind() StateKind  { return StateSettled }

func (Idle) isPlayerState()     {}
func (Spinning) isPlayerState() {}
func (Settled) isPlayerState()  {}

func (s Idle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind StateKind `json:"kind"`
	}{s.Kind()})
}

func (s Spinning) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind         StateKind `json:"kind"`
		TargetOffset float64   `json:"targetOffset"`
	}{s.Kind(), s.TargetOffset})
}

func (s Settled) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   StateKind   `json:"kind"`
		Winner domain.Item `json:"winner"`
	}{s.Kind(), s.Winner})
}
