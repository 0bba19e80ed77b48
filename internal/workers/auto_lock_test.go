package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLocker records LockIfIdle calls.
type fakeLocker struct {
	mu    sync.Mutex
	calls int
	idles []time.Duration
	err   error
}

func (f *fakeLocker) LockIfIdle(_ context.Context, idle time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.idles = append(f.idles, idle)
	return f.err == nil, f.err
}

func (f *fakeLocker) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestAutoLockWorker(locker IdleLocker, idle time.Duration) *AutoLockWorker {
	w := NewAutoLockWorker(locker, idle, logger.Nop())
	w.interval = 5 * time.Millisecond
	return w
}

func TestNewAutoLockWorker_Interval(t *testing.T) {
	tests := []struct {
		idle time.Duration
		want time.Duration
	}{
		{idle: 2 * time.Second, want: time.Second},
		{idle: time.Minute, want: 10 * time.Second},
		{idle: time.Hour, want: 30 * time.Second},
	}

	for _, tt := range tests {
		w := NewAutoLockWorker(&fakeLocker{}, tt.idle, logger.Nop())
		assert.Equal(t, tt.want, w.interval, "idle %s", tt.idle)
	}
}

func TestAutoLockWorker_PollsWithIdlePeriod(t *testing.T) {
	locker := &fakeLocker{}
	w := newTestAutoLockWorker(locker, 5*time.Minute)

	w.Run(context.Background())
	require.Eventually(t, func() bool { return locker.callCount() >= 2 }, time.Second, time.Millisecond)
	w.Stop()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	for _, idle := range locker.idles {
		assert.Equal(t, 5*time.Minute, idle)
	}
}

func TestAutoLockWorker_StopHaltsPolling(t *testing.T) {
	locker := &fakeLocker{}
	w := newTestAutoLockWorker(locker, time.Minute)

	w.Run(context.Background())
	require.Eventually(t, func() bool { return locker.callCount() >= 1 }, time.Second, time.Millisecond)
	w.Stop()

	calls := locker.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, locker.callCount())
}

func TestAutoLockWorker_ContextCancelHaltsPolling(t *testing.T) {
	locker := &fakeLocker{}
	w := newTestAutoLockWorker(locker, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	w.Run(ctx)
	cancel()
	w.Stop()

	calls := locker.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, locker.callCount())
}

func TestAutoLockWorker_KeepsRunningAfterErrors(t *testing.T) {
	locker := &fakeLocker{err: errors.New("storage unavailable")}
	w := newTestAutoLockWorker(locker, time.Minute)

	w.Run(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool { return locker.callCount() >= 3 }, time.Second, time.Millisecond)
}

func TestAutoLockWorker_StopWithoutRun(t *testing.T) {
	w := NewAutoLockWorker(&fakeLocker{}, time.Minute, logger.Nop())

	// Should not block or panic
	w.Stop()
}
