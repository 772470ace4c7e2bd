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

package future

import (
	"context"
	"sync"

	"go.uber.org/multierr"
)

// Future represents the completion of an asynchronous unit of work that
// carries no value. It is settled exactly once, either successfully or with
// an error.
//
// Await can be called any number of times, from any goroutine:
//
//	f := actor.Send(ctx, order)
//	if err := f.Await(ctx); err != nil {
//	    // the behavior failed for this order, or ctx expired while waiting
//	}
//
// Giving up on a Future (ctx canceled) does not cancel the work behind it.
type Future interface {
	// Await blocks until the Future is settled or the context is done.
	// It returns the error the Future was failed with, nil on success, or
	// the context error when the caller stops waiting first.
	Await(ctx context.Context) error
	// Done returns a channel closed once the Future is settled.
	Done() <-chan struct{}
	// IsCompleted reports whether the Future is settled.
	IsCompleted() bool
}

// New runs the given task on its own goroutine and returns a Future
// settled with the task's error.
func New(task func() error) Future {
	completable := NewCompletable()
	go func() {
		if err := task(); err != nil {
			completable.Failure(err)
			return
		}
		completable.Success()
	}()
	return completable.Future()
}

// Failed returns a Future already failed with the given error.
func Failed(err error) Future {
	completable := NewCompletable()
	completable.Failure(err)
	return completable.Future()
}

// Succeeded returns a Future already settled successfully.
func Succeeded() Future {
	completable := NewCompletable()
	completable.Success()
	return completable.Future()
}

// AwaitAll waits for every Future and combines their errors in the order
// the futures were given.
func AwaitAll(ctx context.Context, futures ...Future) error {
	var err error
	for _, f := range futures {
		err = multierr.Append(err, f.Await(ctx))
	}
	return err
}

// future implements the Future interface.
type future struct {
	done chan struct{}
	err  error
}

// Verify future satisfies the Future interface.
var _ Future = (*future)(nil)

func newFuture() *future {
	return &future{done: make(chan struct{})}
}

// Await blocks until the Future is settled or the context is done.
func (x *future) Await(ctx context.Context) error {
	select {
	case <-x.done:
		return x.err
	default:
	}

	select {
	case <-x.done:
		return x.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed once the Future is settled.
func (x *future) Done() <-chan struct{} {
	return x.done
}

// IsCompleted reports whether the Future is settled.
func (x *future) IsCompleted() bool {
	select {
	case <-x.done:
		return true
	default:
		return false
	}
}

// complete settles the future. err is written before done is closed so that
// every reader woken by done observes it.
func (x *future) complete(err error) {
	x.err = err
	close(x.done)
}

// Completable is a writable, single-assignment container settling a Future.
// Only the first call to Success or Failure has an effect.
type Completable struct {
	once   sync.Once
	future *future
}

// NewCompletable returns a new Completable.
func NewCompletable() *Completable {
	return &Completable{future: newFuture()}
}

// Success settles the underlying Future successfully.
func (c *Completable) Success() {
	c.once.Do(func() {
		c.future.complete(nil)
	})
}

// Failure fails the underlying Future with the given error.
func (c *Completable) Failure(err error) {
	c.once.Do(func() {
		c.future.complete(err)
	})
}

// Future returns the underlying Future.
func (c *Completable) Future() Future {
	return c.future
}
