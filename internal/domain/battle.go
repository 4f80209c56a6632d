package domain

import (
	"bytes"
	"encoding/json"
)

// BattleMode is the lobby size of a case battle.
type BattleMode string

const (
	BattleMode1v1     BattleMode = "1v1"
	BattleMode1v1v1   BattleMode = "1v1v1"
	BattleMode1v1v1v1 BattleMode = "1v1v1v1"
)

// BattleStatus is the backend lifecycle state of a battle.
type BattleStatus string

const (
	BattleStatusWaiting  BattleStatus = "waiting"
	BattleStatusRunning  BattleStatus = "running"
	BattleStatusFinished BattleStatus = "finished"
)

var battleModePlayers = map[BattleMode]int{
	BattleMode1v1:     2,
	BattleMode1v1v1:   3,
	BattleMode1v1v1v1: 4,
}

// Players returns the seat count of the mode, or 0 for unknown modes.
func (m BattleMode) Players() int {
	return battleModePlayers[m]
}

// Valid reports whether m is a supported mode.
func (m BattleMode) Valid() bool {
	return m.Players() > 0
}

// BattlePlayer is a seat in a battle. The backend sends either a bare string or an object.
type BattlePlayer struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Key is the identity used for rolls and totals: email, then name, then id.
func (p BattlePlayer) Key() string {
	return firstNonEmpty(p.Email, p.Name, p.ID)
}

// UnmarshalJSON accepts "alice@example.com" or {"email": ...}.
func (p *BattlePlayer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = BattlePlayer{Name: s}
		return nil
	}

	var w struct {
		ID       string `json:"id"`
		MongoID  string `json:"_id"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = BattlePlayer{
		ID:    firstNonEmpty(w.ID, w.MongoID),
		Email: w.Email,
		Name:  firstNonEmpty(w.Name, w.Username),
	}
	return nil
}

// BattleRoll is a server-computed outcome for one player in one round.
type BattleRoll struct {
	Player BattlePlayer `json:"player"`
	Winner *Item        `json:"winner,omitempty"`
}

// BattleRound is one case opened by every player.
// Case is nil when the backend only sent an id.
type BattleRound struct {
	CaseID string       `json:"case_id,omitempty"`
	Case   *Case        `json:"case,omitempty"`
	Rolls  []BattleRoll `json:"rolls,omitempty"`
}

// UnmarshalJSON accepts `case` as an embedded object or as an id string.
func (r *BattleRound) UnmarshalJSON(data []byte) error {
	var w struct {
		CaseID string          `json:"case_id"`
		Case   json.RawMessage `json:"case"`
		Rolls  []BattleRoll    `json:"rolls"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = BattleRound{CaseID: w.CaseID, Rolls: w.Rolls}
	raw := bytes.TrimSpace(w.Case)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return err
		}
		if r.CaseID == "" {
			r.CaseID = id
		}
	default:
		var c Case
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		r.Case = &c
		if r.CaseID == "" {
			r.CaseID = c.ID
		}
	}
	return nil
}

// Battle is the backend view of a case battle.
type Battle struct {
	ID           string            `json:"id"`
	Mode         BattleMode        `json:"mode"`
	Status       BattleStatus      `json:"status"`
	CreatorEmail string            `json:"creator_email,omitempty"`
	EntryPrice   Money             `json:"entry_price,omitempty"`
	IsPrivate    bool              `json:"is_private,omitempty"`
	CaseIDs      []string          `json:"case_ids,omitempty"`
	Players      []BattlePlayer    `json:"players"`
	Rounds       []BattleRound     `json:"rounds"`
	Totals       map[string]Money  `json:"totals,omitempty"`
	WonItems     map[string][]Item `json:"wonItems,omitempty"`
}

// UnmarshalJSON tolerates `_id` for the battle id.
func (b *Battle) UnmarshalJSON(data []byte) error {
	type plain Battle
	var w struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*b = Battle(w.plain)
	if b.ID == "" {
		b.ID = w.MongoID
	}
	return nil
}

// PlayerKeys returns the keys of all seated players in seat order.
func (b *Battle) PlayerKeys() []string {
	keys := make([]string, 0, len(b.Players))
	for _, p := range b.Players {
		keys = append(keys, p.Key())
	}
	return keys
}

// CreateBattleRequest is the payload the backend expects for a new lobby.
type CreateBattleRequest struct {
	CreatorEmail string     `json:"creator_email"`
	Mode         BattleMode `json:"mode"`
	CaseIDs      []string   `json:"case_ids"`
	EntryPrice   *Money     `json:"entry_price,omitempty"`
	IsPrivate    bool       `json:"is_private"`
}
