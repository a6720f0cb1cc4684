// Package progression implements the leveling computations. It performs no
// I/O: callers check a user record out of the store, apply these functions,
// and persist the result themselves.
package progression

import "github.com/tesmond/QuarterBot_Go/internal/domain"

// DefaultCooldownMillis is the minimum gap between XP-eligible messages.
const DefaultCooldownMillis = 60_000

// MessageXP is the XP awarded for a single eligible message.
const MessageXP = 10

// Engine applies message progression with a configurable cooldown.
type Engine struct {
	cooldownMillis int64
}

// NewEngine creates an engine. A non-positive cooldown falls back to the
// default.
func NewEngine(cooldownMillis int64) *Engine {
	if cooldownMillis <= 0 {
		cooldownMillis = DefaultCooldownMillis
	}
	return &Engine{cooldownMillis: cooldownMillis}
}

// AwardMessageXP applies one message event at the given time (epoch millis).
// If the cooldown has not elapsed since the user's last eligible message the
// record is left untouched and awarded is false. This is a throttle, not a
// queue: suppressed messages are never credited later.
func (e *Engine) AwardMessageXP(u *domain.User, nowMillis int64) bool {
	if nowMillis-u.LastMessage < e.cooldownMillis {
		return false
	}
	u.XP += MessageXP
	u.MessagesSent++
	u.LastMessage = nowMillis
	return true
}

// LevelOf computes the derived level for an XP total: the largest L such
// that xp >= 10*L*L. Level 0 starts at 0 XP, level 1 at 10, level 2 at 40,
// level 3 at 90, and so on. Total for all xp and monotone non-decreasing.
func LevelOf(xp int) int {
	if xp < 0 {
		return 0
	}
	level := 0
	for xp >= levelThreshold(level+1) {
		level++
	}
	return level
}

// XPForLevel returns the XP total at which the given level begins.
func XPForLevel(level int) int {
	if level < 0 {
		return 0
	}
	return levelThreshold(level)
}

func levelThreshold(level int) int {
	return 10 * level * level
}
