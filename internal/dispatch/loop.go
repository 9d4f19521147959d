// Package dispatch runs submitted work on a single goroutine.
//
// Every mutation of draw state goes through a Loop so the engine itself
// needs no locking: request handlers, the terminal UI and timers submit
// closures and wait for them to finish.
package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/name-picker/internal/errors"
)

type job struct {
	fn       func()
	err      error
	finished chan struct{}
}

// Loop executes jobs one at a time in submission order
type Loop struct {
	jobs      chan *job
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New starts a loop goroutine
func New() *Loop {
	l := &Loop{
		jobs: make(chan *job),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case j := <-l.jobs:
			j.err = execute(j.fn)
			close(j.finished)
		case <-l.quit:
			return
		}
	}
}

func execute(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Dispatch job panicked", "panic", r)
			err = errors.Internalf("dispatch job panicked: %v", r)
		}
	}()
	fn()
	return nil
}

// Do runs fn on the loop and waits for it to return. The context only
// bounds the wait for a free slot; once accepted the job runs to the end.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.GetCode(err), "dispatch canceled")
	}

	j := &job{fn: fn, finished: make(chan struct{})}
	select {
	case l.jobs <- j:
	case <-ctx.Done():
		return errors.WrapWithCode(ctx.Err(), errors.GetCode(ctx.Err()), "dispatch canceled")
	case <-l.quit:
		return errors.Unavailable("dispatch loop closed")
	}

	<-j.finished
	return j.err
}

// Every submits fn to the loop each interval until the returned stop
// function is called or the loop closes. The interval must be positive.
func (l *Loop) Every(interval time.Duration, fn func()) (stop func(), err error) {
	if interval <= 0 {
		return nil, errors.InvalidArgumentf("interval must be positive, got %s", interval)
	}

	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := l.Do(context.Background(), fn); err != nil {
					if errors.GetCode(err) == errors.CodeUnavailable {
						return
					}
					slog.Warn("Scheduled job failed", "interval", interval.String(), "error", err)
				}
			case <-stopCh:
				return
			case <-l.quit:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(stopCh) }) }, nil
}

// Close stops the loop after the running job, if any, finishes
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.quit) })
	<-l.done
}
