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

package testkit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	// ValuesQueueMax is the number of observations a Probe buffers for Expect calls
	ValuesQueueMax int = 1000
	// DefaultTimeout is how long Expect calls wait by default
	DefaultTimeout time.Duration = 3 * time.Second
)

// Probe records the values a behavior under test observes, in the order
// they were observed, and offers assertions on them.
//
// Record is safe to call from any goroutine. Expect calls consume the
// observations one at a time in record order.
type Probe[T any] struct {
	t       *testing.T
	timeout time.Duration

	mu     sync.Mutex
	values []T
	queue  chan T
}

// NewProbe creates a Probe bound to the given test
func NewProbe[T any](t *testing.T, opts ...Option) *Probe[T] {
	cfg := newConfig()
	for _, opt := range opts {
		opt.Apply(cfg)
	}
	return &Probe[T]{
		t:       t,
		timeout: cfg.timeout,
		values:  make([]T, 0),
		queue:   make(chan T, ValuesQueueMax),
	}
}

// Record stores an observation
func (x *Probe[T]) Record(value T) {
	x.mu.Lock()
	x.values = append(x.values, value)
	x.mu.Unlock()

	select {
	case x.queue <- value:
	default:
	}
}

// Values returns a copy of every observation so far, in record order
func (x *Probe[T]) Values() []T {
	x.mu.Lock()
	defer x.mu.Unlock()
	out := make([]T, len(x.values))
	copy(out, x.values)
	return out
}

// Len returns the number of observations so far
func (x *Probe[T]) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.values)
}

// ExpectValue asserts that the next observation equals expected
func (x *Probe[T]) ExpectValue(expected T) {
	x.t.Helper()
	require.Equal(x.t, expected, x.receiveOne(x.timeout))
}

// ExpectAnyValue waits for the next observation and returns it
func (x *Probe[T]) ExpectAnyValue() T {
	x.t.Helper()
	return x.receiveOne(x.timeout)
}

// ExpectNoValue asserts that nothing is observed within the given duration
func (x *Probe[T]) ExpectNoValue(duration time.Duration) {
	x.t.Helper()
	select {
	case value := <-x.queue:
		require.Failf(x.t, "unexpected observation", "received %v", value)
	case <-time.After(duration):
	}
}

func (x *Probe[T]) receiveOne(duration time.Duration) T {
	x.t.Helper()
	select {
	case value := <-x.queue:
		return value
	case <-time.After(duration):
		require.FailNowf(x.t, "timeout", "no observation within %s", duration)
		var zero T
		return zero
	}
}
