//go:generate mockgen -package=mocks -destination=../../mocks/mock_permission_requester.go github.com/geobridge/geobridge/core/permission Requester

// Package permission gates adapter startup on the host platform's location
// permission. The host supplies the Requester; the Prompter runs requests
// off the calling goroutine and enforces the exactly-once, skip-on-cancel
// callback contract.
package permission

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/geobridge/geobridge/pkg/logging"
)

// Requester is the host platform's location-permission capability.
type Requester interface {
	// Granted reports the current OS-level grant state. Pure query.
	Granted() bool
	// Request prompts the user and blocks until a decision or ctx
	// cancellation. It must be safe to call off the main goroutine.
	Request(ctx context.Context) (bool, error)
}

// ResultCallback receives the grant decision of a prompt.
type ResultCallback func(granted bool)

// Prompter serializes permission prompts on a background worker so the
// caller, typically a foreground UI context, is never blocked.
type Prompter struct {
	requester Requester
	pool      *ants.Pool
	logger    logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPrompter creates a prompter backed by a single-worker pool; prompts
// issued while one is outstanding cancel the previous request first.
func NewPrompter(requester Requester, logger logging.Logger) (*Prompter, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	pool, err := ants.NewPool(1, ants.WithNonblocking(false))
	if err != nil {
		return nil, err
	}
	return &Prompter{
		requester: requester,
		pool:      pool,
		logger:    logger.With("component", "permission"),
	}, nil
}

// Granted reports the current OS-level grant state.
func (p *Prompter) Granted() bool {
	return p.requester.Granted()
}

// Prompt requests the permission on the background worker. On grant,
// onGranted runs before callback. The callback fires exactly once per
// prompt and is skipped entirely when the prompt is cancelled before the
// decision lands. Both onGranted and callback may be nil.
func (p *Prompter) Prompt(onGranted func(), callback ResultCallback) {
	ctx, cancel := context.WithCancel(context.Background())

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.cancel = cancel
	p.mu.Unlock()

	var once sync.Once
	err := p.pool.Submit(func() {
		granted, err := p.requester.Request(ctx)
		if err != nil {
			p.logger.Warn("permission request failed", "error", err)
			granted = false
		}

		// A cancelled prompt must not fire the start side effect or the
		// caller's callback.
		if ctx.Err() != nil {
			p.logger.Debug("permission request cancelled, skipping callback")
			return
		}

		once.Do(func() {
			if granted && onGranted != nil {
				onGranted()
			}
			if callback != nil {
				callback(granted)
			}
		})
	})
	if err != nil {
		cancel()
		p.logger.Error("failed to submit permission request", "error", err)
	}
}

// Cancel aborts any outstanding prompt. Its callback will not fire.
func (p *Prompter) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Close cancels any outstanding prompt and releases the worker pool.
func (p *Prompter) Close() {
	p.Cancel()
	p.pool.Release()
}
