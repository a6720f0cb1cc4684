// Package middleware orchestrates the per-invocation pipeline around every
// inbound command or message event: resolve-or-create the user record, apply
// progression, run the external command body, record analytics, and persist.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tesmond/QuarterBot_Go/internal/analytics"
	"github.com/tesmond/QuarterBot_Go/internal/concurrency"
	"github.com/tesmond/QuarterBot_Go/internal/domain"
	"github.com/tesmond/QuarterBot_Go/internal/logger"
	"github.com/tesmond/QuarterBot_Go/internal/metrics"
	"github.com/tesmond/QuarterBot_Go/internal/progression"
	"github.com/tesmond/QuarterBot_Go/internal/user"
)

// EventKind distinguishes slash-command invocations from plain chat messages.
type EventKind string

const (
	KindSlashCommand EventKind = "slash_command"
	KindMessage      EventKind = "message"
)

// Invocation is the inbound event as handed over by the transport layer.
type Invocation struct {
	AccountID   uint64
	DisplayName string
	Command     string // qualified command name; empty for bare messages
	Timestamp   int64  // epoch millis
	Kind        EventKind
}

// CommandFunc is the external command body. It receives the resolved user
// record (already progressed for message events) and returns the reply text.
// Mutations it makes are persisted with the rest of the invocation.
type CommandFunc func(ctx context.Context, u *domain.User) (string, error)

// Result reports a completed invocation back to the transport layer.
type Result struct {
	Reply string
	User  *domain.User
}

// Policy bounds store access per invocation.
type Policy struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultPolicy matches the configuration defaults.
func DefaultPolicy() Policy {
	return Policy{
		Timeout:    5 * time.Second,
		MaxRetries: 3,
		RetryDelay: 100 * time.Millisecond,
	}
}

// Dispatcher runs the invocation pipeline. Mutations for one account are
// serialized through a keyed lock held for the whole get→mutate→save span;
// unrelated accounts proceed in parallel.
type Dispatcher struct {
	users  user.Service
	engine *progression.Engine
	locks  *concurrency.LockManager
	policy Policy
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(users user.Service, engine *progression.Engine, policy Policy) *Dispatcher {
	if policy.Timeout <= 0 {
		policy.Timeout = DefaultPolicy().Timeout
	}
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if policy.RetryDelay <= 0 {
		policy.RetryDelay = DefaultPolicy().RetryDelay
	}
	return &Dispatcher{
		users:  users,
		engine: engine,
		locks:  concurrency.NewLockManager(),
		policy: policy,
	}
}

// Dispatch runs one invocation through the pipeline:
// Received → Resolved → (Progressed) → Executed → Logged → Persisted → Done.
// Any step can fail the invocation; failures carry a stable error kind so
// the transport layer can render an accurate message.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invocation, body CommandFunc) (*Result, error) {
	start := time.Now()
	ctx = logger.WithInvocationID(ctx, logger.GenerateInvocationID())
	log := logger.FromContext(ctx)

	mu := d.locks.GetLock(inv.AccountID)
	mu.Lock()
	defer mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, d.policy.Timeout)
	defer cancel()

	// Resolved
	var resolved *domain.User
	var created bool
	err := d.withRetry(ctx, OpResolve, func() error {
		var err error
		resolved, created, err = d.users.GetOrCreate(ctx, inv.AccountID)
		return err
	})
	if err != nil {
		log.Error(LogErrResolveFailed, "error", err, "user_id", inv.AccountID, "command", inv.Command)
		d.observe(inv, start, metrics.StatusFailed)
		return nil, fmt.Errorf("resolve user %d: %w", inv.AccountID, err)
	}

	dirty := created

	// Progressed: message events only, never slash-style invocations
	if inv.Kind == KindMessage {
		metrics.MessagesProcessed.Inc()
		if d.engine.AwardMessageXP(resolved, inv.Timestamp) {
			metrics.XPAwarded.Add(progression.MessageXP)
			dirty = true
			log.Debug(LogMsgXPAwarded,
				"user_id", inv.AccountID,
				"xp", resolved.XP,
				"level", progression.LevelOf(resolved.XP))
		}
	}

	// Executed: delegate to the external command body
	reply := ""
	if body != nil {
		reply, err = body(ctx, resolved)
		if err != nil {
			log.Warn(LogMsgCommandFailed, "error", err, "command", inv.Command, "user_id", inv.AccountID)
			d.observe(inv, start, metrics.StatusFailed)
			return nil, err
		}
		dirty = true
	}

	// Logged: command invocations enter the bounded analytics history
	if inv.Command != "" {
		analytics.Record(resolved, inv.Command, inv.Timestamp)
		dirty = true
	}

	// Persisted
	if dirty {
		err = d.withRetry(ctx, OpSave, func() error {
			return d.users.Save(ctx, resolved)
		})
		if err != nil {
			// The visible reply may already be decided; persistence still
			// failed, so the invocation is reported as failed.
			log.Error(LogErrPersistFailed, "error", err, "user_id", inv.AccountID, "command", inv.Command)
			d.observe(inv, start, metrics.StatusFailed)
			return nil, fmt.Errorf("persist user %d: %w", inv.AccountID, err)
		}
	}

	d.observe(inv, start, metrics.StatusOK)
	return &Result{Reply: reply, User: resolved}, nil
}

// withRetry retries transient store failures with bounded exponential
// backoff. Non-transient errors surface immediately.
func (d *Dispatcher) withRetry(ctx context.Context, op string, fn func() error) error {
	delay := d.policy.RetryDelay
	var err error
	for attempt := 0; attempt <= d.policy.MaxRetries; attempt++ {
		if attempt > 0 {
			metrics.StoreRetries.WithLabelValues(op).Inc()
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}
		if err = fn(); err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			return err
		}
	}
	return err
}

func (d *Dispatcher) observe(inv Invocation, start time.Time, status string) {
	command := inv.Command
	if command == "" {
		command = string(inv.Kind)
	}
	metrics.InvocationsTotal.WithLabelValues(command, status).Inc()
	metrics.InvocationDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}
