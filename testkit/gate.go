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
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Gate holds goroutines at a step until the test opens it. It also tells
// the test when the first goroutine reached the step.
type Gate struct {
	arrived    chan struct{}
	open       chan struct{}
	arriveOnce sync.Once
	openOnce   sync.Once
}

// NewGate creates a closed Gate
func NewGate() *Gate {
	return &Gate{
		arrived: make(chan struct{}),
		open:    make(chan struct{}),
	}
}

// Pass blocks until the gate is opened or ctx is done
func (g *Gate) Pass(ctx context.Context) error {
	g.arriveOnce.Do(func() { close(g.arrived) })
	select {
	case <-g.open:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Arrived is closed once a goroutine reached the gate
func (g *Gate) Arrived() <-chan struct{} {
	return g.arrived
}

// Open releases every goroutine held at the gate, now and later
func (g *Gate) Open() {
	g.openOnce.Do(func() { close(g.open) })
}

// Barrier releases its parties only once all of them have arrived
type Barrier struct {
	parties int64
	count   atomic.Int64
	done    chan struct{}
	once    sync.Once
}

// NewBarrier creates a Barrier for the given number of parties
func NewBarrier(parties int) *Barrier {
	return &Barrier{
		parties: int64(parties),
		done:    make(chan struct{}),
	}
}

// Await blocks until every party called Await or ctx is done
func (b *Barrier) Await(ctx context.Context) error {
	if b.count.Inc() >= b.parties {
		b.once.Do(func() { close(b.done) })
	}
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
