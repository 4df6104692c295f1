package live

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type recordingPublisher struct {
	mu      sync.Mutex
	updates []Update
	notify  chan struct{}
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{notify: make(chan struct{}, 100)}
}

func (p *recordingPublisher) Publish(u Update) {
	p.mu.Lock()
	p.updates = append(p.updates, u)
	p.mu.Unlock()
	p.notify <- struct{}{}
}

func (p *recordingPublisher) ticks() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int64, len(p.updates))
	for i, u := range p.updates {
		out[i] = u.Ticks
	}
	return out
}

func (p *recordingPublisher) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-p.notify:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d updates", i, n)
		}
	}
}

func TestPollerPublishesOnChange(t *testing.T) {
	var calls atomic.Int64
	// 10, 10, 11, 11, 12, 12, ...
	source := func() int64 { return 10 + calls.Add(1)/2 }

	pub := newRecordingPublisher()
	p := NewPoller(5*time.Millisecond, pub, WithTickSource(source), WithLogger(quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()

	pub.wait(t, 3)
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}

	got := pub.ticks()
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Errorf("duplicate publish of %d at %d", got[i], i)
		}
	}
	if got[0] != 10 {
		t.Errorf("first publish = %d, want 10", got[0])
	}
}

func TestPollerPublishesImmediately(t *testing.T) {
	pub := newRecordingPublisher()
	p := NewPoller(time.Hour, pub, WithTickSource(func() int64 { return 42 }), WithLogger(quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	pub.wait(t, 1)
	if got := pub.ticks(); len(got) != 1 || got[0] != 42 {
		t.Errorf("published %v, want [42]", got)
	}
}

func TestPollerWithHub(t *testing.T) {
	hub := NewHub(4, quietLogger())
	sub := hub.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewPoller(time.Hour, hub, WithTickSource(func() int64 { return 5 }), WithLogger(quietLogger())).Run(ctx)

	if got := receive(t, sub.C); got.Ticks != 5 {
		t.Errorf("received %d, want 5", got.Ticks)
	}
}
