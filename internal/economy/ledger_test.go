package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

func newFundedUser(balance, cash int) *domain.User {
	u := domain.NewUser(1)
	u.Balance = balance
	u.Cash = cash
	return u
}

func TestDepositFromCash(t *testing.T) {
	u := newFundedUser(100, 50)

	require.NoError(t, Deposit(u, 30, SourceCash))
	assert.Equal(t, 130, u.Balance)
	assert.Equal(t, 20, u.Cash)

	// Second transfer exceeds remaining cash: whole operation rejected
	err := Deposit(u, 30, SourceCash)
	assert.ErrorIs(t, err, domain.ErrInsufficientCash)
	assert.Equal(t, 130, u.Balance)
	assert.Equal(t, 20, u.Cash)
}

func TestDepositExternal(t *testing.T) {
	u := newFundedUser(0, 0)

	require.NoError(t, Deposit(u, 250, SourceExternal))
	assert.Equal(t, 250, u.Balance)
	assert.Equal(t, 0, u.Cash)
}

func TestWithdraw(t *testing.T) {
	u := newFundedUser(100, 0)

	require.NoError(t, Withdraw(u, 40))
	assert.Equal(t, 60, u.Balance)
	assert.Equal(t, 40, u.Cash)

	err := Withdraw(u, 61)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, 60, u.Balance)
	assert.Equal(t, 40, u.Cash)
}

func TestCashAdjustments(t *testing.T) {
	u := newFundedUser(0, 10)

	require.NoError(t, CreditCash(u, 15))
	assert.Equal(t, 25, u.Cash)

	require.NoError(t, DebitCash(u, 25))
	assert.Equal(t, 0, u.Cash)

	err := DebitCash(u, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientCash)
	assert.Equal(t, 0, u.Cash)
}

func TestInvalidAmounts(t *testing.T) {
	u := newFundedUser(100, 100)
	before := *u

	for _, amount := range []int{0, -1, -100} {
		assert.ErrorIs(t, Deposit(u, amount, SourceCash), domain.ErrInvalidAmount)
		assert.ErrorIs(t, Deposit(u, amount, SourceExternal), domain.ErrInvalidAmount)
		assert.ErrorIs(t, Withdraw(u, amount), domain.ErrInvalidAmount)
		assert.ErrorIs(t, CreditCash(u, amount), domain.ErrInvalidAmount)
		assert.ErrorIs(t, DebitCash(u, amount), domain.ErrInvalidAmount)
	}
	assert.Equal(t, before, *u)
}

func TestBalancesNeverGoNegative(t *testing.T) {
	u := newFundedUser(5, 5)

	ops := []func() error{
		func() error { return Deposit(u, 10, SourceCash) },
		func() error { return Withdraw(u, 10) },
		func() error { return DebitCash(u, 10) },
	}
	for _, op := range ops {
		_ = op()
		assert.GreaterOrEqual(t, u.Balance, 0)
		assert.GreaterOrEqual(t, u.Cash, 0)
	}
}
