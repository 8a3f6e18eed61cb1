package core

import (
	"context"
	"testing"
	"time"
)

func TestLoopAdvance(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []time.Duration
		want    int
	}{
		{"under one tick", []time.Duration{10 * time.Millisecond}, 0},
		{"accumulates", []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, 1},
		{"one frame one tick", []time.Duration{time.Second / 60}, 1},
		{"catch up capped", []time.Duration{time.Second}, 5},
		{"negative ignored", []time.Duration{-time.Second}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := 0
			l := NewLoop(func() { n++ }, 60, 5)
			for _, d := range tc.elapsed {
				l.Advance(d)
			}
			if n != tc.want {
				t.Errorf("ticks = %d, want %d", n, tc.want)
			}
		})
	}
}

func TestLoopDropsBacklog(t *testing.T) {
	n := 0
	l := NewLoop(func() { n++ }, 60, 2)
	l.Advance(time.Second)
	if got := l.Advance(0); got != 0 {
		t.Errorf("Advance(0) after a long stall ran %d ticks, want 0", got)
	}
	if n != 2 {
		t.Errorf("ticks = %d, want 2", n)
	}
}

func TestLoopRunLimit(t *testing.T) {
	n := 0
	l := NewLoop(func() { n++ }, 1000, 1)
	if err := l.Run(context.Background(), 3); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n != 3 {
		t.Errorf("ticks = %d, want 3", n)
	}
}

func TestLoopRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoop(func() {}, 60, 1)
	if err := l.Run(ctx, 0); err == nil {
		t.Fatal("Run() error = nil, want context error")
	}
}
