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
	"sync"
	"sync/atomic"
	"unsafe"
)

// CacheLinePadding prevents false sharing between CPU cache lines
type CacheLinePadding [64]byte

type node struct {
	value atomic.Pointer[Envelope]
	next  unsafe.Pointer
}

var nodePool = sync.Pool{New: func() any { return new(node) }}

// UnboundedMailbox is a lock-free multi-producer, single-consumer (MPSC)
// FIFO queue. It is the default mailbox of an Actor.
//
// If producers outpace the drain loop, memory grows without limit. Use
// BoundedMailbox to get a backpressure signal instead.
//
// Reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type UnboundedMailbox struct {
	// consumer side
	head unsafe.Pointer // *node
	_    CacheLinePadding

	// producer side
	tail unsafe.Pointer // *node
	_    CacheLinePadding

	length atomic.Int64
}

// enforces compilation error
var _ Mailbox = (*UnboundedMailbox)(nil)

// NewUnboundedMailbox returns a new, initialized UnboundedMailbox.
// The zero value is not usable.
func NewUnboundedMailbox() *UnboundedMailbox {
	item := new(node)
	return &UnboundedMailbox{
		head: unsafe.Pointer(item),
		tail: unsafe.Pointer(item),
	}
}

// Enqueue appends the envelope to the tail of the mailbox. It never fails.
func (m *UnboundedMailbox) Enqueue(value *Envelope) error {
	tnode := nodePool.Get().(*node)
	tnode.value.Store(value)
	atomic.StorePointer(&tnode.next, nil)

	// swap the tail first, then link the previous tail to the new node
	prev := (*node)(atomic.SwapPointer(&m.tail, unsafe.Pointer(tnode)))
	m.length.Add(1)
	atomic.StorePointer(&prev.next, unsafe.Pointer(tnode))
	return nil
}

// Dequeue removes and returns the envelope at the head of the mailbox, or
// nil when the mailbox is empty. It must be called by one consumer at a time.
func (m *UnboundedMailbox) Dequeue() *Envelope {
	head := (*node)(atomic.LoadPointer(&m.head))
	next := (*node)(atomic.LoadPointer(&head.next))

	if next == nil {
		return nil
	}

	atomic.StorePointer(&m.head, unsafe.Pointer(next))
	value := next.value.Load()
	next.value.Store(nil)
	m.length.Add(-1)

	nodePool.Put(head)
	return value
}

// Len returns the number of envelopes in the mailbox. Under concurrent
// producers the value is a point-in-time estimate.
func (m *UnboundedMailbox) Len() int64 {
	return m.length.Load()
}

// IsEmpty reports whether the mailbox currently holds no linked envelope.
func (m *UnboundedMailbox) IsEmpty() bool {
	head := (*node)(atomic.LoadPointer(&m.head))
	return atomic.LoadPointer(&head.next) == nil
}

// Dispose is a no-op; nodes are reclaimed by the pool and the garbage collector.
func (m *UnboundedMailbox) Dispose() {}
