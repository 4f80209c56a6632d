package domain

import "time"

// Default progression values for a fresh mirror.
const (
	DefaultXPToNextLevel = 100
	DefaultLevel         = 1
)

// Stats tracks lifetime activity of the local user.
type Stats struct {
	CasesOpened        int   `json:"casesOpened"`
	TotalSpent         Money `json:"totalSpent"`
	TotalWon           Money `json:"totalWon"`
	BattlesWon         int   `json:"battlesWon"`
	ContractsCompleted int   `json:"contractsCompleted"`
}

// User is the best-effort local mirror of the server-owned account.
// Balance is authoritative only on the backend and is re-synced periodically.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Balance        Money      `json:"balance"`
	Level          int        `json:"level"`
	XP             int        `json:"xp"`
	XPToNextLevel  int        `json:"xpToNextLevel"`
	Inventory      []Item     `json:"inventory"`
	LastDailyBonus *time.Time `json:"lastDailyBonus,omitempty"`
	Stats          Stats      `json:"stats"`
}

// NewUser builds a fresh mirror for the given identity.
func NewUser(id, username, email string) *User {
	return &User{
		ID:            id,
		Username:      username,
		Email:         email,
		Level:         DefaultLevel,
		XPToNextLevel: DefaultXPToNextLevel,
		Inventory:     []Item{},
	}
}

// AddXP adds xp and levels up every XPToNextLevel points. It returns the number of levels gained.
func (u *User) AddXP(xp int) int {
	if u.XPToNextLevel <= 0 {
		u.XPToNextLevel = DefaultXPToNextLevel
	}
	if u.Level <= 0 {
		u.Level = DefaultLevel
	}

	u.XP += xp
	gained := 0
	for u.XP >= u.XPToNextLevel {
		u.XP -= u.XPToNextLevel
		u.Level++
		gained++
	}
	return gained
}

// FindItem returns the index of the inventory entry with the given uid, or -1.
func (u *User) FindItem(uid string) int {
	for i := range u.Inventory {
		if u.Inventory[i].UID == uid {
			return i
		}
	}
	return -1
}

// RemoveItems drops the inventory entries whose uid is in uids.
func (u *User) RemoveItems(uids ...string) {
	drop := make(map[string]bool, len(uids))
	for _, uid := range uids {
		drop[uid] = true
	}

	kept := u.Inventory[:0]
	for _, item := range u.Inventory {
		if !drop[item.UID] {
			kept = append(kept, item)
		}
	}
	u.Inventory = kept
}

// Clone returns a deep copy safe to hand out of a lock.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Inventory = make([]Item, len(u.Inventory))
	copy(c.Inventory, u.Inventory)
	if u.LastDailyBonus != nil {
		t := *u.LastDailyBonus
		c.LastDailyBonus = &t
	}
	return &c
}
