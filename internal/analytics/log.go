// Package analytics maintains the bounded per-user command history.
package analytics

import "github.com/tesmond/QuarterBot_Go/internal/domain"

// MaxCommandHistory caps the per-user command log. Oldest entries are
// evicted first, so storage stays bounded regardless of activity volume.
const MaxCommandHistory = 50

// Record appends a command invocation to the user's history, evicting the
// oldest entry when the cap is reached.
func Record(u *domain.User, command string, nowMillis int64) {
	if len(u.LastCommandList) >= MaxCommandHistory {
		overflow := len(u.LastCommandList) - MaxCommandHistory + 1
		u.LastCommandList = append(u.LastCommandList[:0], u.LastCommandList[overflow:]...)
	}
	u.LastCommandList = append(u.LastCommandList, domain.CommandUsed{
		Command:   command,
		Timestamp: nowMillis,
	})
}
