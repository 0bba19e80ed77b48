// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
)

const (
	minCheckInterval = time.Second
	maxCheckInterval = 30 * time.Second
)

// AutoLockWorker locks an unlocked, PIN-protected companion after a period
// without activity.
type AutoLockWorker struct {
	locker   IdleLocker
	idle     time.Duration
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockWorker creates an AutoLockWorker that checks for inactivity a
// few times per idle period. The worker is idle until Run is called.
func NewAutoLockWorker(locker IdleLocker, idle time.Duration, log *logger.Logger) *AutoLockWorker {
	return &AutoLockWorker{
		locker:   locker,
		idle:     idle,
		interval: min(max(idle/6, minCheckInterval), maxCheckInterval),
		logger:   log,
	}
}

// Run implements Worker. It stops any previously running loop, then polls
// LockIfIdle every interval until ctx is cancelled or Stop is called.
func (w *AutoLockWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("idle", w.idle).Dur("interval", w.interval).Msg("auto-lock worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := w.locker.LockIfIdle(jobCtx, w.idle); err != nil {
					w.logger.Err(err).Msg("auto-lock failed")
				}
			}
		}
	}()
}

// Stop implements Worker. It cancels the loop and blocks until it has
// exited. Safe to call when the worker is not running.
func (w *AutoLockWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
