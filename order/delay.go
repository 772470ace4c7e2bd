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

package order

import (
	"context"
	"math/rand/v2"
	"time"
)

// Delayer stands in for the latency of a remote call
type Delayer interface {
	// Delay blocks for some time or until ctx is done
	Delay(ctx context.Context) error
}

// RandomDelay waits a random duration in [0, Max)
type RandomDelay struct {
	Max time.Duration
}

// enforce compilation error
var (
	_ Delayer = RandomDelay{}
	_ Delayer = NoDelay{}
)

// Delay implements Delayer
func (d RandomDelay) Delay(ctx context.Context) error {
	if d.Max <= 0 || ctx.Err() != nil {
		return ctx.Err()
	}

	timer := time.NewTimer(rand.N(d.Max))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay returns immediately
type NoDelay struct{}

// Delay implements Delayer
func (NoDelay) Delay(ctx context.Context) error {
	return ctx.Err()
}
