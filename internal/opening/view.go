package opening

import (
	"github.com/google/uuid"

	"github.com/samigvnc/csgo-frontend/internal/domain"
	"github.com/samigvnc/csgo-frontend/internal/reveal"
)

// View is the renderer-facing snapshot of a reveal.
type View struct {
	ID           uuid.UUID           `json:"id"`
	CaseID       string              `json:"caseId"`
	CaseName     string              `json:"caseName"`
	Price        domain.Money        `json:"price"`
	Phase        reveal.Phase        `json:"phase"`
	State        reveal.PlayerState  `json:"state"`
	Strip        []domain.Item       `json:"strip"`
	WinIndex     int                 `json:"winIndex"`
	Source       reveal.Source       `json:"source"`
	TargetOffset float64             `json:"targetOffset"`
	SpinMs       int64               `json:"spinMs"`
	Balance      domain.Money        `json:"balance"`
	Winner       *domain.Item        `json:"winner,omitempty"` // set once settled
	Item         *domain.Item        `json:"item,omitempty"`   // the inventory entry created on settle
}

func (e *entry) view() *View {
	snap := e.reveal.Snapshot()
	v := &View{
		ID:           snap.ID,
		CaseID:       e.caseID,
		CaseName:     e.caseName,
		Price:        e.price,
		Phase:        snap.Phase,
		State:        snap.State(),
		Strip:        snap.Strip.Items,
		WinIndex:     snap.Strip.WinIndex,
		Source:       snap.Strip.Source,
		TargetOffset: snap.Offset,
		SpinMs:       snap.SpinMs,
		Balance:      e.balance,
	}
	if snap.Phase == reveal.PhaseSettled {
		w := snap.Strip.Winner
		v.Winner = &w
	}
	if e.item != nil {
		it := *e.item
		v.Item = &it
	}
	return v
}
