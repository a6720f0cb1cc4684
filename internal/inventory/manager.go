// Package inventory manages item ownership and equip slots on a checked-out
// user record. The caller holds the per-user serialization lock and persists
// the result. Every operation either succeeds with invariants intact or
// fails leaving the record unchanged.
//
// Invariants maintained here:
//   - equipped items are always owned (equipped ⊆ inventory by item ID)
//   - at most one equipped item per category
package inventory

import (
	"fmt"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// AddItem appends a copy of the catalog item to the inventory. Duplicates
// are allowed; insertion order is acquisition order.
func AddItem(u *domain.User, item domain.Item) {
	u.Inventory = append(u.Inventory, item)
}

// RemoveItem removes one owned instance of the given item ID. If that was
// the last owned instance and the item is equipped, it is unequipped too so
// the ownership invariant holds.
func RemoveItem(u *domain.User, itemID int) error {
	idx := -1
	for i, it := range u.Inventory {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotOwned, itemID)
	}

	u.Inventory = append(u.Inventory[:idx], u.Inventory[idx+1:]...)
	if !u.OwnsItem(itemID) {
		unequipID(u, itemID)
	}
	return nil
}

// Equip equips an owned item. If another item already occupies the same
// category it is replaced in the same step; two items of one category are
// never equipped simultaneously.
func Equip(u *domain.User, itemID int) error {
	var item domain.Item
	found := false
	for _, it := range u.Inventory {
		if it.ID == itemID {
			item = it
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotOwned, itemID)
	}

	kept := u.Equipped[:0]
	for _, it := range u.Equipped {
		if it.Category != item.Category {
			kept = append(kept, it)
		}
	}
	u.Equipped = append(kept, item)
	return nil
}

// Unequip removes the item from the equipped set. Ownership is untouched.
func Unequip(u *domain.User, itemID int) error {
	if _, ok := u.EquippedItem(itemID); !ok {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotEquipped, itemID)
	}
	unequipID(u, itemID)
	return nil
}

func unequipID(u *domain.User, itemID int) {
	kept := u.Equipped[:0]
	for _, it := range u.Equipped {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	u.Equipped = kept
}
