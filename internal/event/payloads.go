package event

import (
	"time"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// RevealPayloadV1 describes a single-case reveal at one phase of its lifecycle.
type RevealPayloadV1 struct {
	RevealID     string       `json:"reveal_id"`
	UserEmail    string       `json:"user_email"`
	CaseID       string       `json:"case_id"`
	CaseName     string       `json:"case_name"`
	Price        domain.Money `json:"price"`
	Phase        string       `json:"phase"`
	Source       string       `json:"source,omitempty"`
	StripLength  int          `json:"strip_length,omitempty"`
	WinIndex     int          `json:"win_index,omitempty"`
	TargetOffset float64      `json:"target_offset,omitempty"`
	SpinMs       int64        `json:"spin_ms,omitempty"`
	Winner       *domain.Item `json:"winner,omitempty"`
	Balance      domain.Money `json:"balance"`
}

// BattleRoundPayloadV1 reports one battle round starting or settling.
type BattleRoundPayloadV1 struct {
	BattleID string                  `json:"battle_id"`
	Round    int                     `json:"round"`
	CaseID   string                  `json:"case_id"`
	Offsets  map[string]float64      `json:"offsets,omitempty"`
	Winners  map[string]domain.Item  `json:"winners,omitempty"`
	Totals   map[string]domain.Money `json:"totals"`
}

// BattleCompletedPayloadV1 is published once per battle playback.
type BattleCompletedPayloadV1 struct {
	BattleID       string                  `json:"battle_id"`
	Winner         string                  `json:"winner"`
	Totals         map[string]domain.Money `json:"totals"`
	Rounds         int                     `json:"rounds"`
	SessionUserWon bool                    `json:"session_user_won"`
}

// ContractCompletedPayloadV1 reports an upgrade contract outcome.
type ContractCompletedPayloadV1 struct {
	UserEmail string        `json:"user_email"`
	From      domain.Rarity `json:"from"`
	To        domain.Rarity `json:"to"`
	Success   bool          `json:"success"`
	Cost      domain.Money  `json:"cost"`
	Consumed  int           `json:"consumed"`
	Reward    *domain.Item  `json:"reward,omitempty"`
}

// ItemSoldPayloadV1 reports an inventory item sold back for credit.
type ItemSoldPayloadV1 struct {
	UserEmail string       `json:"user_email"`
	Item      domain.Item  `json:"item"`
	Balance   domain.Money `json:"balance"`
}

// BonusClaimedPayloadV1 reports a claimed daily bonus.
type BonusClaimedPayloadV1 struct {
	UserEmail string       `json:"user_email"`
	Amount    domain.Money `json:"amount"`
	Balance   domain.Money `json:"balance"`
	ClaimedAt time.Time    `json:"claimed_at"`
}

// BalanceSyncedPayloadV1 reports a balance adopted from the backend.
type BalanceSyncedPayloadV1 struct {
	UserEmail string       `json:"user_email"`
	Previous  domain.Money `json:"previous"`
	Balance   domain.Money `json:"balance"`
}

// NewRevealEvent builds a reveal lifecycle event.
func NewRevealEvent(t Type, p RevealPayloadV1) Event {
	return New(t, p)
}

// NewBattleRoundEvent builds a round started/settled event.
func NewBattleRoundEvent(t Type, p BattleRoundPayloadV1) Event {
	return New(t, p)
}

// NewBattleCompletedEvent builds the final battle event.
func NewBattleCompletedEvent(p BattleCompletedPayloadV1) Event {
	return New(BattleCompleted, p)
}

// NewContractCompletedEvent builds a contract outcome event.
func NewContractCompletedEvent(p ContractCompletedPayloadV1) Event {
	return New(ContractCompleted, p)
}

// NewItemSoldEvent builds a sale event.
func NewItemSoldEvent(email string, item domain.Item, balance domain.Money) Event {
	return New(ItemSold, ItemSoldPayloadV1{UserEmail: email, Item: item, Balance: balance})
}

// NewBonusClaimedEvent builds a daily bonus event.
func NewBonusClaimedEvent(email string, amount, balance domain.Money, at time.Time) Event {
	return New(BonusClaimed, BonusClaimedPayloadV1{UserEmail: email, Amount: amount, Balance: balance, ClaimedAt: at})
}

// NewBalanceSyncedEvent builds a balance sync event.
func NewBalanceSyncedEvent(email string, previous, balance domain.Money) Event {
	return New(BalanceSynced, BalanceSyncedPayloadV1{UserEmail: email, Previous: previous, Balance: balance})
}
