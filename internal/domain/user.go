package domain

// User represents the persistent per-account state of a chatter.
//
// Level is intentionally absent: it is derived from XP by the progression
// package and must never be persisted independently.
type User struct {
	ID uint64 `json:"id"`

	// Leveling
	XP           int   `json:"xp"`
	MessagesSent int   `json:"messages_sent"`
	LastMessage  int64 `json:"last_message"` // epoch millis of last XP-eligible message

	// Currency: Balance is banked, Cash is on hand
	Balance int `json:"balance"`
	Cash    int `json:"cash"`

	// Inventory holds owned items in acquisition order (duplicates allowed).
	// Equipped holds at most one item per category and is always a subset of
	// Inventory by item ID.
	Inventory []Item `json:"inventory"`
	Equipped  []Item `json:"equipped"`

	// Analytics
	LastCommandList []CommandUsed `json:"last_command_list"`
}

// CommandUsed is a single entry in a user's command history.
type CommandUsed struct {
	Command   string `json:"command"`
	Timestamp int64  `json:"timestamp"` // epoch millis
}

// NewUser returns a zero-valued user for the given account ID.
func NewUser(id uint64) *User {
	return &User{
		ID:              id,
		Inventory:       []Item{},
		Equipped:        []Item{},
		LastCommandList: []CommandUsed{},
	}
}

// Clone returns a deep copy of the user. Slices are copied so mutations on
// the clone never leak into cached records.
func (u *User) Clone() *User {
	c := *u
	c.Inventory = append([]Item(nil), u.Inventory...)
	c.Equipped = append([]Item(nil), u.Equipped...)
	c.LastCommandList = append([]CommandUsed(nil), u.LastCommandList...)
	return &c
}

// OwnsItem reports whether the inventory contains at least one instance of
// the given item ID.
func (u *User) OwnsItem(itemID int) bool {
	for _, it := range u.Inventory {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// EquippedItem returns the equipped item with the given ID, if any.
func (u *User) EquippedItem(itemID int) (Item, bool) {
	for _, it := range u.Equipped {
		if it.ID == itemID {
			return it, true
		}
	}
	return Item{}, false
}
