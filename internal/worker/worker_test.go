package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		require.True(t, p.Submit(func(context.Context) {
			mu.Lock()
			count++
			mu.Unlock()
		}))
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	done := false
	p.Submit(func(context.Context) { done = true })
	p.Stop()
	require.True(t, done)
}

func TestPoolCancelsContextOnStop(t *testing.T) {
	p := NewPool(1)
	var got context.Context
	ran := make(chan struct{})
	p.Submit(func(ctx context.Context) {
		got = ctx
		close(ran)
	})
	<-ran
	p.Stop()
	require.Error(t, got.Err())
}

func TestPoolSubmitDoesNotBlockWhenSaturated(t *testing.T) {
	p := NewPool(1)
	started := make(chan struct{})
	release := make(chan struct{})
	require.True(t, p.Submit(func(context.Context) {
		close(started)
		<-release
	}))
	<-started

	// with the lone worker parked, fill the queue until Submit drops
	for p.Submit(func(context.Context) {}) {
	}
	require.False(t, p.Submit(func(context.Context) {}))

	close(release)
	p.Stop()
}
