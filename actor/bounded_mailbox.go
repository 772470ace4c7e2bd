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
	gods "github.com/Workiva/go-datastructures/queue"

	gerrors "github.com/tochemey/serialactor/errors"
)

// BoundedMailbox is a fixed-capacity MPSC mailbox backed by a ring buffer.
//
// Enqueue never blocks: when the ring buffer is full it returns
// ErrMailboxFull, which the actor surfaces through the future returned by
// Send. This is the backpressure extension of the actor; the default
// mailbox is unbounded.
//
// The ring buffer's Offer gives up when two producers race on the same
// slot, so concurrent Enqueue calls may report ErrMailboxFull early. The
// actor enqueues under its send lock, which rules that out.
type BoundedMailbox struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Mailbox = (*BoundedMailbox)(nil)

// MinMailboxCapacity is the smallest capacity of a BoundedMailbox. A ring
// buffer of one slot has an empty index mask and never reports full.
const MinMailboxCapacity = 2

// NewBoundedMailbox creates a bounded mailbox. The ring buffer rounds the
// capacity up to the next power of two, so Cap may exceed the requested
// capacity. Capacities below MinMailboxCapacity are raised to it.
func NewBoundedMailbox(capacity int) *BoundedMailbox {
	if capacity < MinMailboxCapacity {
		capacity = MinMailboxCapacity
	}
	return &BoundedMailbox{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue inserts an envelope or fails with ErrMailboxFull.
func (mailbox *BoundedMailbox) Enqueue(envelope *Envelope) error {
	ok, err := mailbox.underlying.Offer(envelope)
	if err != nil {
		return err
	}
	if !ok {
		return gerrors.ErrMailboxFull
	}
	return nil
}

// Dequeue removes and returns the oldest envelope, or nil when empty.
// Only one consumer may call Dequeue at a time.
func (mailbox *BoundedMailbox) Dequeue() *Envelope {
	if mailbox.underlying.Len() > 0 {
		item, _ := mailbox.underlying.Get()
		if v, ok := item.(*Envelope); ok {
			return v
		}
	}
	return nil
}

// IsEmpty reports whether the mailbox currently has no messages.
func (mailbox *BoundedMailbox) IsEmpty() bool {
	return mailbox.underlying.Len() == 0
}

// Len returns the current number of messages in the mailbox.
func (mailbox *BoundedMailbox) Len() int64 {
	return int64(mailbox.underlying.Len())
}

// Cap returns the capacity of the underlying ring buffer.
func (mailbox *BoundedMailbox) Cap() int64 {
	return int64(mailbox.underlying.Cap())
}

// Dispose releases the underlying ring buffer.
func (mailbox *BoundedMailbox) Dispose() {
	mailbox.underlying.Dispose()
}
