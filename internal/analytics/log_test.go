package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

func TestRecordAppendsNewestLast(t *testing.T) {
	u := domain.NewUser(1)

	Record(u, "ping", 100)
	Record(u, "help", 200)

	require.Len(t, u.LastCommandList, 2)
	assert.Equal(t, domain.CommandUsed{Command: "ping", Timestamp: 100}, u.LastCommandList[0])
	assert.Equal(t, domain.CommandUsed{Command: "help", Timestamp: 200}, u.LastCommandList[1])
}

func TestRecordEvictsOldestAtCap(t *testing.T) {
	u := domain.NewUser(1)

	for i := 0; i < MaxCommandHistory+1; i++ {
		Record(u, fmt.Sprintf("cmd-%d", i), int64(i))
	}

	require.Len(t, u.LastCommandList, MaxCommandHistory)
	assert.Equal(t, "cmd-1", u.LastCommandList[0].Command)
	assert.Equal(t, fmt.Sprintf("cmd-%d", MaxCommandHistory), u.LastCommandList[MaxCommandHistory-1].Command)

	// Remaining order preserved
	for i := 1; i < len(u.LastCommandList); i++ {
		assert.Less(t, u.LastCommandList[i-1].Timestamp, u.LastCommandList[i].Timestamp)
	}
}
