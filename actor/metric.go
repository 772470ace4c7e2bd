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

import "time"

// Metric is a point-in-time snapshot of an actor's activity
type Metric struct {
	processedCount          uint64
	failureCount            uint64
	latestProcessedDuration time.Duration
	mailboxSize             int64
	uptime                  int64
	draining                bool
}

// ProcessedCount returns the total number of messages processed
func (x Metric) ProcessedCount() uint64 {
	return x.processedCount
}

// FailureCount returns the number of messages whose behavior failed
func (x Metric) FailureCount() uint64 {
	return x.failureCount
}

// LatestProcessedDuration returns the duration of the latest message processed
func (x Metric) LatestProcessedDuration() time.Duration {
	return x.latestProcessedDuration
}

// MailboxSize returns the number of messages waiting to be processed
func (x Metric) MailboxSize() int64 {
	return x.mailboxSize
}

// Uptime returns the number of seconds since the actor was created
func (x Metric) Uptime() int64 {
	return x.uptime
}

// Draining reports whether a drain loop was running when the snapshot was taken
func (x Metric) Draining() bool {
	return x.draining
}
