package mode

import (
	"context"
	"time"

	"noir-be/internal/logger"

	"go.uber.org/zap"
)

// DefaultPollInterval matches the storefront's client-side sync cadence.
const DefaultPollInterval = 3 * time.Second

// Watcher polls the mode on a fixed interval and invokes the callback
// when it changes. Clients already on the page learn about an
// administrator flip within one interval plus latency.
type Watcher struct {
	svc      Service
	interval time.Duration
	onChange func(Mode)

	last Mode
}

func NewWatcher(svc Service, interval time.Duration, onChange func(Mode)) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		svc:      svc,
		interval: interval,
		onChange: onChange,
		last:     ModeNormal,
	}
}

// Run blocks until ctx is cancelled. The first tick establishes a
// baseline; only transitions fire the callback.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.last = w.svc.GetMode(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := w.svc.GetMode(ctx)
			if current != w.last {
				logger.L().Info("homepage mode transition observed",
					zap.String("from", string(w.last)),
					zap.String("to", string(current)),
				)
				w.last = current
				if w.onChange != nil {
					w.onChange(current)
				}
			}
		}
	}
}
