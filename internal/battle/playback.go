package battle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/event"
	"github.com/samigvnc/csgo-frontend/internal/logger"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
)

// Playback is a snapshot of a battle being animated round by round.
type Playback struct {
	BattleID   string                        `json:"battleId"`
	Mode       domain.BattleMode             `json:"mode"`
	Players    []string                      `json:"players"`
	Round      int                           `json:"round"` // -1 before the first round
	Rounds     int                           `json:"rounds"`
	CaseID     string                        `json:"caseId,omitempty"`
	States     map[string]reveal.PlayerState `json:"states"`
	Strips     map[string]reveal.Strip       `json:"strips,omitempty"`
	Totals     map[string]domain.Money       `json:"totals"`
	WonItems   map[string][]domain.Item      `json:"wonItems"`
	Finished   bool                          `json:"finished"`
	Winner     string                        `json:"winner,omitempty"`
	Error      string                        `json:"error,omitempty"`
	StartedAt  time.Time                     `json:"startedAt"`
	FinishedAt *time.Time                    `json:"finishedAt,omitempty"`
}

type playback struct {
	mu    sync.Mutex
	state Playback
	done  bool
}

func newPlayback(b *domain.Battle) *playback {
	keys := b.PlayerKeys()
	p := &playback{state: Playback{
		BattleID:  b.ID,
		Mode:      b.Mode,
		Players:   keys,
		Round:     -1,
		Rounds:    len(b.Rounds),
		States:    make(map[string]reveal.PlayerState, len(keys)),
		Totals:    make(map[string]domain.Money, len(keys)),
		WonItems:  make(map[string][]domain.Item, len(keys)),
		StartedAt: time.Now().UTC(),
	}}
	for _, k := range keys {
		p.state.States[k] = reveal.Idle{}
		p.state.Totals[k] = 0
		p.state.WonItems[k] = []domain.Item{}
	}
	return p
}

func (p *playback) running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.done
}

func (p *playback) snapshot() *Playback {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.state
	c.Players = append([]string(nil), p.state.Players...)
	c.States = make(map[string]reveal.PlayerState, len(p.state.States))
	for k, v := range p.state.States {
		c.States[k] = v
	}
	c.Strips = make(map[string]reveal.Strip, len(p.state.Strips))
	for k, v := range p.state.Strips {
		v.Items = append([]domain.Item(nil), v.Items...)
		c.Strips[k] = v
	}
	c.Totals = make(map[string]domain.Money, len(p.state.Totals))
	for k, v := range p.state.Totals {
		c.Totals[k] = v
	}
	c.WonItems = make(map[string][]domain.Item, len(p.state.WonItems))
	for k, v := range p.state.WonItems {
		c.WonItems[k] = append([]domain.Item{}, v...)
	}
	return &c
}

func (p *playback) update(fn func(st *Playback)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.state)
}

// seat is one player's part in a round.
type seat struct {
	key      string
	override *domain.Item
	reveal   *reveal.Reveal // nil when nothing could be drawn
}

func (s *service) run(ctx context.Context, b *domain.Battle, p *playback, layout reveal.Layout) {
	log := logger.FromContext(ctx)

	for i, round := range b.Rounds {
		if err := s.playRound(ctx, b, p, i, round, layout); err != nil {
			log.Warn(LogMsgPlaybackAborted, "battle_id", b.ID, "round", i, "error", err)
			p.update(func(st *Playback) {
				st.Error = err.Error()
			})
			s.finish(ctx, b, p, "")
			return
		}
	}

	winner := s.pickWinner(p)
	s.finish(ctx, b, p, winner)
}

func (s *service) playRound(ctx context.Context, b *domain.Battle, p *playback, index int,
	round domain.BattleRound, layout reveal.Layout) error {
	cs, err := s.roundCase(ctx, round)
	if err != nil {
		return err
	}

	seats := seatsFor(b, round)
	g, gctx := errgroup.WithContext(ctx)
	for i := range seats {
		st := &seats[i]
		g.Go(func() error {
			if len(cs.Contents) == 0 {
				return nil
			}
			if st.override == nil && s.opts.RequireServerWinner {
				return fmt.Errorf("%w: round %d player %s", domain.ErrNoServerOutcome, index, st.key)
			}
			r, err := s.engine.NewReveal(cs.Contents, st.override)
			if errors.Is(err, domain.ErrNoWinner) {
				return nil
			}
			if err != nil {
				return err
			}
			if _, err := r.Spin(layout, time.Now()); err != nil {
				return err
			}
			st.reveal = r
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	offsets := make(map[string]float64, len(seats))
	p.update(func(state *Playback) {
		state.Round = index
		state.CaseID = cs.ID
		state.Strips = make(map[string]reveal.Strip, len(seats))
		for _, st := range seats {
			if st.reveal == nil {
				state.States[st.key] = reveal.Idle{}
				continue
			}
			state.States[st.key] = st.reveal.State()
			state.Strips[st.key] = st.reveal.Strip
			offsets[st.key] = st.reveal.Offset
		}
	})
	if len(offsets) == 0 {
		logger.FromContext(ctx).Warn(LogMsgRoundSkipped, "battle_id", b.ID, "round", index, "case_id", cs.ID)
	}
	s.publish(ctx, event.NewBattleRoundEvent(event.BattleRoundStarted, event.BattleRoundPayloadV1{
		BattleID: b.ID,
		Round:    index,
		CaseID:   cs.ID,
		Offsets:  offsets,
		Totals:   p.snapshot().Totals,
	}))

	// Each seat settles on its own timer; the round joins on all of them.
	wait := s.engine.SpinDuration() + SettleGap
	settle, sctx := errgroup.WithContext(ctx)
	winners := make(map[string]domain.Item, len(seats))
	var wmu sync.Mutex
	for i := range seats {
		st := &seats[i]
		if st.reveal == nil {
			continue
		}
		settle.Go(func() error {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-sctx.Done():
				return sctx.Err()
			}

			winner, _, err := st.reveal.Settle(time.Now())
			if err != nil {
				return err
			}
			wmu.Lock()
			winners[st.key] = winner
			wmu.Unlock()

			p.update(func(state *Playback) {
				state.States[st.key] = st.reveal.State()
				state.Totals[st.key] += winner.Price
				state.WonItems[st.key] = append(state.WonItems[st.key], winner)
			})
			return nil
		})
	}
	if err := settle.Wait(); err != nil {
		return err
	}

	s.publish(ctx, event.NewBattleRoundEvent(event.BattleRoundSettled, event.BattleRoundPayloadV1{
		BattleID: b.ID,
		Round:    index,
		CaseID:   cs.ID,
		Winners:  winners,
		Totals:   p.snapshot().Totals,
	}))
	return nil
}

// roundCase returns the round's case with contents, fetching it when only an id was sent.
func (s *service) roundCase(ctx context.Context, round domain.BattleRound) (*domain.Case, error) {
	if round.Case != nil && len(round.Case.Contents) > 0 {
		return round.Case, nil
	}
	id := round.CaseID
	if id == "" && round.Case != nil {
		id = round.Case.ID
	}
	if id == "" {
		return &domain.Case{}, nil
	}
	return s.catalog.Get(ctx, id)
}

// seatsFor uses the server rolls when present, otherwise every seated player.
func seatsFor(b *domain.Battle, round domain.BattleRound) []seat {
	if len(round.Rolls) > 0 {
		out := make([]seat, 0, len(round.Rolls))
		for _, roll := range round.Rolls {
			out = append(out, seat{key: roll.Player.Key(), override: roll.Winner})
		}
		return out
	}
	out := make([]seat, 0, len(b.Players))
	for _, key := range b.PlayerKeys() {
		out = append(out, seat{key: key})
	}
	return out
}

// pickWinner returns the highest total, breaking ties uniformly at random
// over the sorted tied keys. Nobody wins when no seat ever settled an item.
func (s *service) pickWinner(p *playback) string {
	snap := p.snapshot()
	settled := 0
	for _, items := range snap.WonItems {
		settled += len(items)
	}
	totals := snap.Totals
	if len(totals) == 0 || settled == 0 {
		return ""
	}

	var best domain.Money
	var tied []string
	for key, total := range totals {
		switch {
		case len(tied) == 0 || total > best:
			best = total
			tied = []string{key}
		case total == best:
			tied = append(tied, key)
		}
	}
	sort.Strings(tied)
	return tied[reveal.IntN(s.rng, len(tied))]
}

func (s *service) finish(ctx context.Context, b *domain.Battle, p *playback, winner string) {
	now := time.Now().UTC()
	p.mu.Lock()
	p.state.Finished = true
	p.state.Winner = winner
	p.state.FinishedAt = &now
	p.done = true
	p.mu.Unlock()

	snap := p.snapshot()
	won := false
	if winner != "" {
		won = s.recordWin(ctx, winner)
	}

	logger.FromContext(ctx).Info(LogMsgPlaybackFinished, "battle_id", b.ID, "winner", winner, "session_user_won", won)
	s.publish(ctx, event.NewBattleCompletedEvent(event.BattleCompletedPayloadV1{
		BattleID:       b.ID,
		Winner:         winner,
		Totals:         snap.Totals,
		Rounds:         snap.Rounds,
		SessionUserWon: won,
	}))
}
