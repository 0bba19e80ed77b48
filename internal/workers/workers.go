package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers wires the background workers. The auto-lock worker is only
// added when autoLockAfter is positive.
func NewWorkers(locker IdleLocker, autoLockAfter time.Duration, log *logger.Logger) *Workers {
	ws := &Workers{}
	if autoLockAfter > 0 {
		ws.workers = append(ws.workers, NewAutoLockWorker(locker, autoLockAfter, log))
	}
	return ws
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
