package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCounter_IncrementsWithinWindow(t *testing.T) {
	c := NewMemoryCounter()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Increment(ctx, "user:1", time.Minute)
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		if got != want {
			t.Errorf("expected count %d, got %d", want, got)
		}
	}
}

func TestMemoryCounter_KeysAreIndependent(t *testing.T) {
	c := NewMemoryCounter()
	ctx := context.Background()

	if _, err := c.Increment(ctx, "user:1", time.Minute); err != nil {
		t.Fatalf("increment: %v", err)
	}
	got, err := c.Increment(ctx, "user:2", time.Minute)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got != 1 {
		t.Errorf("expected fresh key to start at 1, got %d", got)
	}
}

func TestMemoryCounter_WindowExpires(t *testing.T) {
	c := NewMemoryCounter()
	ctx := context.Background()

	if _, err := c.Increment(ctx, "ip:1.2.3.4", 10*time.Millisecond); err != nil {
		t.Fatalf("increment: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	got, err := c.Increment(ctx, "ip:1.2.3.4", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got != 1 {
		t.Errorf("expected count reset after window, got %d", got)
	}
}
