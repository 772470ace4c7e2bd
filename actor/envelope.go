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
	"time"

	"github.com/tochemey/serialactor/future"
)

// Envelope is a mailbox entry: the message plus what the drain loop needs
// to process it and to settle the sender's future.
type Envelope struct {
	ctx         context.Context
	sequence    uint64
	message     any
	enqueuedAt  time.Time
	completable *future.Completable
}

func newEnvelope(ctx context.Context, sequence uint64, message any) *Envelope {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Envelope{
		ctx:         ctx,
		sequence:    sequence,
		message:     message,
		enqueuedAt:  time.Now(),
		completable: future.NewCompletable(),
	}
}

// Context returns the context the message was sent with
func (e *Envelope) Context() context.Context {
	return e.ctx
}

// Sequence returns the position of the message in the actor's arrival order,
// starting at 1.
func (e *Envelope) Sequence() uint64 {
	return e.sequence
}

// Message returns the message
func (e *Envelope) Message() any {
	return e.message
}

// EnqueuedAt returns the time the message entered the mailbox
func (e *Envelope) EnqueuedAt() time.Time {
	return e.enqueuedAt
}

func (e *Envelope) future() future.Future {
	return e.completable.Future()
}

func (e *Envelope) settle(err error) {
	if err != nil {
		e.completable.Failure(err)
		return
	}
	e.completable.Success()
}
