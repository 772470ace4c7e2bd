/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/serialactor/errors"
	"github.com/tochemey/serialactor/future"
	"github.com/tochemey/serialactor/internal/metric"
	"github.com/tochemey/serialactor/internal/validation"
	"github.com/tochemey/serialactor/log"
)

// specifies the state in which the actor is
// regarding message processing
const (
	// idle means no drain loop is running
	idle int32 = iota
	// busy means a drain loop owns the mailbox and the state
	busy
)

// stopPollInterval is how often Stop checks whether the mailbox is drained
const stopPollInterval = 5 * time.Millisecond

// Behavior processes a single message against the actor state.
//
// It may block (I/O, timers, channels) and may read and mutate state. The
// actor guarantees that no two invocations of the behavior ever overlap and
// that they run in the order the messages were sent. The returned error is
// reported to the sender of that message only; a panic is recovered and
// reported the same way.
type Behavior[M, S any] func(ctx context.Context, message M, state S) error

// Actor owns a piece of mutable state and a FIFO mailbox, and applies its
// Behavior to the queued messages one at a time.
//
// The state is never exposed: every read or write goes through a message.
// Messages are processed in arrival order by at most one drain goroutine.
// When the behavior fails for a message, the failure is reported through
// that message's future and the drain loop moves on to the next message.
type Actor[M, S any] struct {
	id       string
	name     string
	behavior Behavior[M, S]
	state    S

	mailbox Mailbox
	// processing is the re-entrancy guard of the drain loop
	processing atomic.Int32

	// sendMu makes the stopped check, the sequence assignment and the
	// enqueue one step
	sendMu   sync.Mutex
	sequence uint64
	stopped  atomic.Bool

	disposeOnce sync.Once
	createdAt   time.Time

	logger                  log.Logger
	metrics                 *metric.ActorMetric
	processedCount          atomic.Uint64
	failureCount            atomic.Uint64
	latestProcessedDuration atomic.Duration
}

// New creates an Actor bound to the given behavior and owning the given
// initial state.
//
// It fails with a ConfigurationError when the behavior is nil, when the
// state is a nil pointer, map, slice, channel, function or interface, or
// when an option is invalid. All violations are reported at once.
func New[M, S any](behavior Behavior[M, S], state S, opts ...Option) (*Actor[M, S], error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt.Apply(cfg)
	}

	if err := validation.New(validation.AllErrors()).
		AddAssertion(behavior != nil, gerrors.ErrUndefinedBehavior).
		AddAssertion(!isNil(state), gerrors.ErrUndefinedState).
		AddValidator(cfg).
		Validate(); err != nil {
		return nil, gerrors.NewConfigurationError(err)
	}

	id := uuid.NewString()
	name := cfg.name
	if name == "" {
		name = id
	}

	mailbox := cfg.mailbox
	if mailbox == nil {
		mailbox = NewUnboundedMailbox()
	}

	actorMetric, err := metric.NewActorMetric(metric.NewProvider(cfg.meterProvider).Meter(), name)
	if err != nil {
		return nil, gerrors.NewConfigurationError(err)
	}

	x := &Actor[M, S]{
		id:        id,
		name:      name,
		behavior:  behavior,
		state:     state,
		mailbox:   mailbox,
		createdAt: time.Now(),
		logger:    cfg.logger.With("actor", name),
		metrics:   actorMetric,
	}
	x.processing.Store(idle)
	return x, nil
}

// ID returns the unique identifier of the actor
func (x *Actor[M, S]) ID() string {
	return x.id
}

// Name returns the actor name
func (x *Actor[M, S]) Name() string {
	return x.name
}

// IsRunning returns true when the actor accepts messages
func (x *Actor[M, S]) IsRunning() bool {
	return !x.stopped.Load()
}

// Send appends the message to the mailbox and makes sure a drain loop is
// running. It never blocks on the behavior.
//
// The returned future settles once the message has been processed, which
// implies every message sent before it has been processed as well. It fails
// with a BehaviorError when the behavior fails for this message, with
// ErrActorStopped after Stop, and with ErrMailboxFull when a bounded mailbox
// is full.
//
// ctx is handed to the behavior. Canceling it does not remove the message
// from the mailbox.
func (x *Actor[M, S]) Send(ctx context.Context, message M) future.Future {
	x.sendMu.Lock()
	if x.stopped.Load() {
		x.sendMu.Unlock()
		return future.Failed(gerrors.ErrActorStopped)
	}

	envelope := newEnvelope(ctx, x.sequence+1, message)
	if err := x.mailbox.Enqueue(envelope); err != nil {
		x.sendMu.Unlock()
		x.logger.Warnf("message rejected by mailbox: %v", err)
		return future.Failed(err)
	}
	x.sequence++
	x.sendMu.Unlock()

	x.metrics.RecordEnqueued(envelope.Context())
	x.process()
	return envelope.future()
}

// SendSync sends the message and waits for it to be processed.
func (x *Actor[M, S]) SendSync(ctx context.Context, message M) error {
	return x.Send(ctx, message).Await(ctx)
}

// Stop refuses any further message and waits for the messages already in
// the mailbox to be processed. It returns ctx.Err() when ctx is done before
// the mailbox is drained; the drain loop keeps running in that case.
// Calling Stop more than once is safe.
func (x *Actor[M, S]) Stop(ctx context.Context) error {
	x.sendMu.Lock()
	x.stopped.Store(true)
	x.sendMu.Unlock()

	ticker := time.NewTicker(stopPollInterval)
	defer ticker.Stop()

	for !x.drained() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	x.disposeOnce.Do(func() {
		x.mailbox.Dispose()
		x.logger.Debug("actor stopped")
	})
	return nil
}

// Metric returns a snapshot of the actor activity
func (x *Actor[M, S]) Metric() *Metric {
	return &Metric{
		processedCount:          x.processedCount.Load(),
		failureCount:            x.failureCount.Load(),
		latestProcessedDuration: x.latestProcessedDuration.Load(),
		mailboxSize:             x.mailbox.Len(),
		uptime:                  int64(time.Since(x.createdAt).Seconds()),
		draining:                x.processing.Load() == busy,
	}
}

// process starts a drain loop when transitioning from idle to busy.
// If another loop is already running it exits early: that loop will
// pick up the message.
func (x *Actor[M, S]) process() {
	if !x.processing.CompareAndSwap(idle, busy) {
		return
	}
	go x.drain()
}

// drain processes every message in the mailbox, one at a time, until the
// mailbox is empty.
func (x *Actor[M, S]) drain() {
	x.logger.Debug("drain loop started")
	defer x.logger.Debug("drain loop stopped")
	for {
		for envelope := x.mailbox.Dequeue(); envelope != nil; envelope = x.mailbox.Dequeue() {
			x.handle(envelope)
		}

		x.processing.Store(idle)

		// a sender may have enqueued after the last Dequeue and lost the CAS
		// while this loop was still busy
		if x.mailbox.IsEmpty() || !x.processing.CompareAndSwap(idle, busy) {
			return
		}
	}
}

// handle runs the behavior for one envelope and settles its future
func (x *Actor[M, S]) handle(envelope *Envelope) {
	start := time.Now()
	err := x.invoke(envelope)
	duration := time.Since(start)

	x.latestProcessedDuration.Store(duration)
	x.processedCount.Inc()

	if err != nil {
		x.failureCount.Inc()
		err = gerrors.NewBehaviorError(envelope.Sequence(), err)
		x.logger.With("seq", envelope.Sequence(), "duration", duration).Error(err)
	}

	x.metrics.RecordProcessed(envelope.Context(), duration, err != nil)
	envelope.settle(err)
}

// invoke calls the behavior and turns a panic into a PanicError
func (x *Actor[M, S]) invoke(envelope *Envelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			pc, fn, line, _ := runtime.Caller(2)
			switch e := r.(type) {
			case error:
				var pe *gerrors.PanicError
				if errors.As(e, &pe) {
					err = pe
					return
				}
				err = gerrors.NewPanicError(fmt.Errorf("%w at %s[%s:%d]", e, runtime.FuncForPC(pc).Name(), fn, line))
			default:
				err = gerrors.NewPanicError(fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line))
			}
		}
	}()

	var message M
	if envelope.Message() != nil {
		var ok bool
		if message, ok = envelope.Message().(M); !ok {
			return gerrors.ErrInvalidMessage
		}
	}

	return x.behavior(envelope.Context(), message, x.state)
}

// drained reports whether no drain loop is running and nothing is queued
func (x *Actor[M, S]) drained() bool {
	return x.processing.Load() == idle && x.mailbox.IsEmpty()
}

// isNil reports whether value is nil or a nil pointer, map, slice, channel,
// function or interface
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
