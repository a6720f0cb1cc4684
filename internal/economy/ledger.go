// Package economy implements the balance/cash ledger operations. All
// functions operate on a checked-out user record; the caller holds the
// per-user serialization lock and persists the result. Operations are
// all-or-nothing: on error the record is left byte-for-byte unchanged.
package economy

import (
	"fmt"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// DepositSource identifies where deposited funds come from.
type DepositSource string

const (
	// SourceCash moves funds from the user's on-hand cash.
	SourceCash DepositSource = "cash"
	// SourceExternal mints funds from outside the ledger (rewards, admin grants).
	SourceExternal DepositSource = "external"
)

// Deposit increases the banked balance by amount. With SourceCash the same
// amount is removed from on-hand cash first; the transfer fails whole if
// cash is insufficient.
func Deposit(u *domain.User, amount int, from DepositSource) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if from == SourceCash {
		if u.Cash < amount {
			return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientCash, u.Cash, amount)
		}
		u.Cash -= amount
	}
	u.Balance += amount
	return nil
}

// Withdraw moves amount from the banked balance to on-hand cash.
func Withdraw(u *domain.User, amount int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if u.Balance < amount {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBalance, u.Balance, amount)
	}
	u.Balance -= amount
	u.Cash += amount
	return nil
}

// CreditCash adds amount to on-hand cash (command rewards, payouts).
func CreditCash(u *domain.User, amount int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	u.Cash += amount
	return nil
}

// DebitCash removes amount from on-hand cash (purchases, fees).
func DebitCash(u *domain.User, amount int) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if u.Cash < amount {
		return fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientCash, u.Cash, amount)
	}
	u.Cash -= amount
	return nil
}

func validateAmount(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return nil
}
