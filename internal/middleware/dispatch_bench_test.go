package middleware

import (
	"context"
	"testing"

	"github.com/tesmond/QuarterBot_Go/internal/progression"
	"github.com/tesmond/QuarterBot_Go/internal/user"
)

func BenchmarkDispatchSlashCommand(b *testing.B) {
	repo := user.NewFakeRepository()
	svc := user.NewService(repo)
	engine := progression.NewEngine(progression.DefaultCooldownMillis)
	d := NewDispatcher(svc, engine, testPolicy())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv := slashEvent(uint64(i%100), "ping", int64(i))
		if _, err := d.Dispatch(ctx, inv, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDispatchMessage(b *testing.B) {
	repo := user.NewFakeRepository()
	svc := user.NewService(repo)
	engine := progression.NewEngine(progression.DefaultCooldownMillis)
	d := NewDispatcher(svc, engine, testPolicy())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv := messageEvent(uint64(i%100), int64(i)*progression.DefaultCooldownMillis)
		if _, err := d.Dispatch(ctx, inv, nil); err != nil {
			b.Fatal(err)
		}
	}
}
