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
	"go.uber.org/atomic"
)

// Tracker counts how many goroutines are inside a section at the same time
// and remembers the highest count ever observed.
//
//	leave := tracker.Enter()
//	defer leave()
type Tracker struct {
	current atomic.Int64
	peak    atomic.Int64
	entries atomic.Int64
}

// NewTracker creates a Tracker
func NewTracker() *Tracker {
	return new(Tracker)
}

// Enter marks the caller as inside the section and returns the function
// that marks it as gone
func (x *Tracker) Enter() (leave func()) {
	x.entries.Inc()
	current := x.current.Inc()
	for {
		peak := x.peak.Load()
		if current <= peak || x.peak.CompareAndSwap(peak, current) {
			break
		}
	}
	return func() { x.current.Dec() }
}

// Current returns the number of goroutines inside the section
func (x *Tracker) Current() int64 {
	return x.current.Load()
}

// Peak returns the highest number of goroutines ever inside the section at once
func (x *Tracker) Peak() int64 {
	return x.peak.Load()
}

// Entries returns how many times the section was entered
func (x *Tracker) Entries() int64 {
	return x.entries.Load()
}
